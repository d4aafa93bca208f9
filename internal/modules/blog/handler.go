package blog

import (
	"errors"
	"log"
	"net/http"

	"transferhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts", h.ListPublished)
	rg.GET("/posts/:slug", h.GetPublished)
}

func (h *Handler) RegisterCMSRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts", h.ListAll)
	rg.POST("/posts", h.Create)
	rg.PUT("/posts/:id", h.Update)
	rg.DELETE("/posts/:id", h.Delete)
}

func (h *Handler) ListPublished(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		log.Printf("post list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list posts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) GetPublished(c *gin.Context) {
	p, err := h.service.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "POST_NOT_FOUND", "Post not found")
			return
		}
		log.Printf("post get failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": p})
}

func (h *Handler) ListAll(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("cms post list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list posts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A post with this slug already exists")
			return
		}
		log.Printf("post create failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post": p})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdatePost(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "POST_NOT_FOUND", "Post not found")
		case errors.Is(err, ErrSlugTaken):
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A post with this slug already exists")
		default:
			log.Printf("post update failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update post")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": p})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "POST_NOT_FOUND", "Post not found")
			return
		}
		log.Printf("post delete failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

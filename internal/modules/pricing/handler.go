package pricing

import (
	"errors"
	"log"
	"net/http"
	"strconv"

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
	rg.GET("/quotes", h.Quote)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/routes", h.List)
	rg.POST("/routes", h.Create)
	rg.DELETE("/routes/:id", h.Delete)
}

func (h *Handler) Quote(c *gin.Context) {
	pickup := c.Query("pickup")
	dropoff := c.Query("dropoff")
	vehicleType := c.Query("vehicle_type")
	if pickup == "" || dropoff == "" || vehicleType == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "pickup, dropoff and vehicle_type are required")
		return
	}

	p, err := h.service.Quote(c.Request.Context(), pickup, dropoff, vehicleType)
	if err != nil {
		if errors.Is(err, ErrRouteNotPriced) {
			response.Error(c, http.StatusNotFound, "ROUTE_NOT_PRICED", "No fixed price for this route")
			return
		}
		log.Printf("quote lookup failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to look up price")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"price":       float64(p.PriceCents) / 100,
		"price_cents": p.PriceCents,
		"currency":    p.Currency,
	})
}

func (h *Handler) List(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		log.Printf("route list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list routes")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"routes": routes})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.AddRoute(c.Request.Context(), req)
	if err != nil {
		log.Printf("route create failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create route")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"route": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid route id")
		return
	}

	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		log.Printf("route delete failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete route")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

package console

import (
	"errors"
	"net/http"

	"transferhub/internal/config"
	"transferhub/internal/pkg/response"
	"transferhub/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	service *Service
	cfg     *config.Config
}

func NewHandler(service *Service, cfg *config.Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.login(session.ConsoleAdmin))
	rg.POST("/cms/login", h.login(session.ConsoleCMS))
	rg.POST("/admin/logout", h.logout)
	rg.POST("/cms/logout", h.logout)
}

func (h *Handler) login(console session.Console) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Password is required")
			return
		}

		token, err := h.service.Login(console, req.Password)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Wrong password")
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
			return
		}

		h.setSameSite(c)
		c.SetCookie(h.cfg.CookieName, token, int(h.cfg.SessionTTL.Seconds()), h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
		response.Success(c, http.StatusOK, gin.H{"console": console})
	}
}

func (h *Handler) logout(c *gin.Context) {
	h.setSameSite(c)
	c.SetCookie(h.cfg.CookieName, "", -1, h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

func (h *Handler) setSameSite(c *gin.Context) {
	switch h.cfg.CookieSameSite {
	case "None", "none":
		c.SetSameSite(http.SameSiteNoneMode)
	case "Strict", "strict":
		c.SetSameSite(http.SameSiteStrictMode)
	default:
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

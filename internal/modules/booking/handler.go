package booking

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
	rg.POST("/payments/confirm", h.ConfirmPayment)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.ConfirmPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email or lead id is required")
		case errors.Is(err, ErrUnknownLead):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		default:
			log.Printf("payment confirmation failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking_id": b.ID,
	})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		log.Printf("booking list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
	})
}

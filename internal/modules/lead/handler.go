package lead

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"transferhub/internal/domain"
	"transferhub/internal/modules/attribution"
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
	rg.POST("/leads", h.Upsert)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.List)
	rg.GET("/leads/abandoned", h.Abandoned)
}

func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	// First submission without an explicit utm block: attach whatever the
	// attribution cookie holds. Updates never carry attribution anyway.
	if req.ID == "" && req.UTM == nil {
		if rec, ok := attribution.FromRequest(c); ok {
			req.UTM = payloadFromRecord(rec)
		}
	}

	l, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		log.Printf("lead upsert failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save lead")
		return
	}

	if l == nil {
		response.Skipped(c, http.StatusOK)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead_id": l.ID})
}

func (h *Handler) List(c *gin.Context) {
	var status *domain.LeadStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.LeadStatus(raw)
		if s != domain.LeadDraft && s != domain.LeadConverted {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown lead status")
			return
		}
		status = &s
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, total, err := h.service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		log.Printf("lead list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list leads")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"leads": leads,
		"total": total,
	})
}

func (h *Handler) Abandoned(c *gin.Context) {
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "24"))

	leads, err := h.service.FindAbandoned(c.Request.Context(), hours)
	if err != nil {
		log.Printf("abandoned lead query failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to query abandoned leads")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

func payloadFromRecord(rec *attribution.Record) *AttributionPayload {
	p := &AttributionPayload{
		UTMSource:   rec.Params["utm_source"],
		UTMMedium:   rec.Params["utm_medium"],
		UTMCampaign: rec.Params["utm_campaign"],
		UTMTerm:     rec.Params["utm_term"],
		UTMContent:  rec.Params["utm_content"],
	}
	if !rec.CapturedAt.IsZero() {
		t := rec.CapturedAt
		p.CapturedAt = &t
	}
	return p
}

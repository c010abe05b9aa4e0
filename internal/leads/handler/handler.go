package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"greenscape_backend/internal/leads/domain"
	"greenscape_backend/internal/leads/repository"
	"greenscape_backend/internal/leads/service"
	"greenscape_backend/internal/leads/transport"
	"greenscape_backend/platform/httpkit"
	"greenscape_backend/platform/validator"
)

// Handler handles HTTP requests for lead intake and the admin pipeline.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

// New creates a new lead handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit accepts a quote-form submission, scores it and persists the lead.
// POST /api/v1/leads
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// PreviewScore returns the live score estimate for a partial form.
// POST /api/v1/leads/preview-score
func (h *Handler) PreviewScore(c *gin.Context) {
	var req transport.PreviewScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.PreviewScore(req))
}

// List returns leads for the admin dashboard, filtered and paged.
// GET /api/v1/admin/leads?status=new&minScore=60&limit=50&offset=0
func (h *Handler) List(c *gin.Context) {
	params := repository.ListLeadsParams{Limit: 50}

	if raw := c.Query("status"); raw != "" {
		status := domain.LeadStatus(raw)
		if !status.IsValid() {
			httpkit.Error(c, http.StatusBadRequest, "invalid status filter", nil)
			return
		}
		params.Status = &status
	}
	if raw := c.Query("minScore"); raw != "" {
		minScore, err := strconv.Atoi(raw)
		if err != nil || minScore < 0 || minScore > 100 {
			httpkit.Error(c, http.StatusBadRequest, "invalid minScore filter", nil)
			return
		}
		params.MinScore = &minScore
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			params.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			params.Offset = offset
		}
	}

	result, err := h.svc.List(c.Request.Context(), params)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetByID returns one lead.
// GET /api/v1/admin/leads/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// UpdateStatus moves a lead through the pipeline.
// PATCH /api/v1/admin/leads/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.UpdateStatus(c.Request.Context(), id, domain.LeadStatus(req.Status))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

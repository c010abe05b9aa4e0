package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenscape_backend/internal/quote/service"
	"greenscape_backend/internal/quote/transport"
	"greenscape_backend/platform/httpkit"
	"greenscape_backend/platform/validator"
)

// Handler handles HTTP requests for quotes and seasonal state.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new quote handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetQuote computes tier price ranges for a service.
// GET /api/v1/quote?service=lawn-mowing&location=maplewood&lotSize=medium
func (h *Handler) GetQuote(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.svc.GetQuote(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetSeason returns the active display season for site theming.
// GET /api/v1/season
func (h *Handler) GetSeason(c *gin.Context) {
	httpkit.OK(c, h.svc.GetSeason())
}

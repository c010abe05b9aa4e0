package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"greenscape_backend/internal/catalog/service"
	"greenscape_backend/internal/catalog/transport"
	"greenscape_backend/platform/httpkit"
	"greenscape_backend/platform/validator"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListActiveServices returns active services for the public site.
// GET /api/v1/services
func (h *Handler) ListActiveServices(c *gin.Context) {
	result, err := h.svc.ListActiveServices(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetServiceBySlug returns one service by slug.
// GET /api/v1/services/:slug
func (h *Handler) GetServiceBySlug(c *gin.Context) {
	result, err := h.svc.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListServices returns all services (admin).
// GET /api/v1/admin/services
func (h *Handler) ListServices(c *gin.Context) {
	result, err := h.svc.ListServices(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateService creates a service (admin).
// POST /api/v1/admin/services
func (h *Handler) CreateService(c *gin.Context) {
	var req transport.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreateService(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// UpdateService updates a service (admin).
// PUT /api/v1/admin/services/:id
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.UpdateService(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ToggleServiceActive toggles a service's active flag (admin).
// PATCH /api/v1/admin/services/:id/toggle-active
func (h *Handler) ToggleServiceActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.ToggleServiceActive(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// DeleteService removes a service (admin).
// DELETE /api/v1/admin/services/:id
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.DeleteService(c.Request.Context(), id)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "deleted"})
}

// ListPricing returns all pricing rows for a service (admin).
// GET /api/v1/admin/services/:id/pricing
func (h *Handler) ListPricing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.ListPricing(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreatePricingRow creates a pricing row (admin).
// POST /api/v1/admin/pricing-rows
func (h *Handler) CreatePricingRow(c *gin.Context) {
	var req transport.CreatePricingRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreatePricingRow(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// SetPricingRowActive sets a pricing row's active flag (admin).
// PATCH /api/v1/admin/pricing-rows/:id/active
func (h *Handler) SetPricingRowActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if httpkit.HandleError(c, h.svc.TogglePricingRowActive(c.Request.Context(), id, req.IsActive)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "updated"})
}

// DeletePricingRow removes a pricing row (admin).
// DELETE /api/v1/admin/pricing-rows/:id
func (h *Handler) DeletePricingRow(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.DeletePricingRow(c.Request.Context(), id)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "deleted"})
}

// ListModifiers returns a service's seasonal modifiers (admin).
// GET /api/v1/admin/services/:id/modifiers
func (h *Handler) ListModifiers(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.ListModifiers(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateModifier creates a seasonal modifier (admin).
// POST /api/v1/admin/seasonal-modifiers
func (h *Handler) CreateModifier(c *gin.Context) {
	var req transport.CreateModifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreateModifier(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// DeleteModifier removes a seasonal modifier (admin).
// DELETE /api/v1/admin/seasonal-modifiers/:id
func (h *Handler) DeleteModifier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.DeleteModifier(c.Request.Context(), id)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "deleted"})
}

// ListActiveLocations returns active locations for the public site.
// GET /api/v1/locations
func (h *Handler) ListActiveLocations(c *gin.Context) {
	result, err := h.svc.ListActiveLocations(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListLocations returns all locations (admin).
// GET /api/v1/admin/locations
func (h *Handler) ListLocations(c *gin.Context) {
	result, err := h.svc.ListLocations(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateLocation creates a location (admin).
// POST /api/v1/admin/locations
func (h *Handler) CreateLocation(c *gin.Context) {
	var req transport.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreateLocation(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// ToggleLocationActive toggles a location's active flag (admin).
// PATCH /api/v1/admin/locations/:id/toggle-active
func (h *Handler) ToggleLocationActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.ToggleLocationActive(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// DeleteLocation removes a location (admin).
// DELETE /api/v1/admin/locations/:id
func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.DeleteLocation(c.Request.Context(), id)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "deleted"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}

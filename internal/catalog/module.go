package catalog

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"greenscape_backend/internal/catalog/handler"
	"greenscape_backend/internal/catalog/repository"
	"greenscape_backend/internal/catalog/service"
	apphttp "greenscape_backend/internal/http"
	"greenscape_backend/platform/logger"
	"greenscape_backend/platform/validator"
)

// Module wires the catalog bounded context: services, pricing rows,
// seasonal modifiers and locations.
type Module struct {
	handler *handler.Handler
	repo    repository.Repository
}

var _ apphttp.Module = (*Module)(nil)

// NewModule builds the catalog module from its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{handler: h, repo: repo}
}

// Name returns the module name.
func (m *Module) Name() string { return "catalog" }

// Repository exposes the catalog store for sibling modules.
func (m *Module) Repository() repository.Repository { return m.repo }

// RegisterRoutes mounts public and admin catalog routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/services", m.handler.ListActiveServices)
	ctx.V1.GET("/services/:slug", m.handler.GetServiceBySlug)
	ctx.V1.GET("/locations", m.handler.ListActiveLocations)

	admin := ctx.Admin
	admin.GET("/services", m.handler.ListServices)
	admin.POST("/services", m.handler.CreateService)
	admin.PUT("/services/:id", m.handler.UpdateService)
	admin.PATCH("/services/:id/toggle-active", m.handler.ToggleServiceActive)
	admin.DELETE("/services/:id", m.handler.DeleteService)

	admin.GET("/services/:id/pricing", m.handler.ListPricing)
	admin.POST("/pricing-rows", m.handler.CreatePricingRow)
	admin.PATCH("/pricing-rows/:id/active", m.handler.SetPricingRowActive)
	admin.DELETE("/pricing-rows/:id", m.handler.DeletePricingRow)

	admin.GET("/services/:id/modifiers", m.handler.ListModifiers)
	admin.POST("/seasonal-modifiers", m.handler.CreateModifier)
	admin.DELETE("/seasonal-modifiers/:id", m.handler.DeleteModifier)

	admin.GET("/locations", m.handler.ListLocations)
	admin.POST("/locations", m.handler.CreateLocation)
	admin.PATCH("/locations/:id/toggle-active", m.handler.ToggleLocationActive)
	admin.DELETE("/locations/:id", m.handler.DeleteLocation)
}

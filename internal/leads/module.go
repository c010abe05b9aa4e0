package leads

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"greenscape_backend/internal/events"
	apphttp "greenscape_backend/internal/http"
	"greenscape_backend/internal/leads/handler"
	"greenscape_backend/internal/leads/repository"
	"greenscape_backend/internal/leads/service"
	"greenscape_backend/platform/logger"
	"greenscape_backend/platform/validator"
)

// Module wires the leads bounded context: public form intake and the
// admin pipeline.
type Module struct {
	handler *handler.Handler
}

var _ apphttp.Module = (*Module)(nil)

// NewModule builds the leads module from its dependencies. The catalog
// reader verifies the service/location a prospect selected.
func NewModule(pool *pgxpool.Pool, catalog service.CatalogReader, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, catalog, bus, log)
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module name.
func (m *Module) Name() string { return "leads" }

// RegisterRoutes mounts public (rate-limited) and admin lead routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	limit := ctx.LeadFormRateLimiter.RateLimit()
	ctx.V1.POST("/leads", limit, m.handler.Submit)
	ctx.V1.POST("/leads/preview-score", limit, m.handler.PreviewScore)

	ctx.Admin.GET("/leads", m.handler.List)
	ctx.Admin.GET("/leads/:id", m.handler.GetByID)
	ctx.Admin.PATCH("/leads/:id/status", m.handler.UpdateStatus)
}

package quote

import (
	apphttp "greenscape_backend/internal/http"
	"greenscape_backend/internal/quote/handler"
	"greenscape_backend/internal/quote/service"
	"greenscape_backend/platform/config"
	"greenscape_backend/platform/logger"
	"greenscape_backend/platform/validator"
)

// Module wires the quote bounded context: pricing quotes and seasonal
// theming state.
type Module struct {
	handler *handler.Handler
}

var _ apphttp.Module = (*Module)(nil)

// NewModule builds the quote module on top of the catalog store.
func NewModule(store service.CatalogStore, site config.SiteConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, site, log)
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module name.
func (m *Module) Name() string { return "quote" }

// RegisterRoutes mounts the public quote routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/quote", m.handler.GetQuote)
	ctx.V1.GET("/season", m.handler.GetSeason)
}

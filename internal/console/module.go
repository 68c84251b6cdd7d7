// Package console provides the operator lookup workflow module: resolving a
// user from one identifying input and aggregating their profile.
package console

import (
	"admin_console/internal/console/handler"
	"admin_console/internal/console/service"
	"admin_console/internal/events"
	apphttp "admin_console/internal/http"
	"admin_console/platform/config"
	"admin_console/platform/logger"
	"admin_console/platform/validator"
)

// Module is the console module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the console module over src.
func NewModule(src service.DataSource, val *validator.Validator, bus events.Bus, cfg config.ConsoleConfig, log *logger.Logger) *Module {
	svc := service.New(src, val, bus, log, service.Options{
		SectionTimeout: cfg.GetConsoleSectionTimeout(),
		SessionTTL:     cfg.GetConsoleSessionTTL(),
	})
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "console"
}

// Service returns the service layer.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the console routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/console")
	group.GET("/lookup", m.handler.Lookup)
	group.GET("/sessions/:sessionId", m.handler.GetSession)

	group.GET("/properties", m.handler.BrowseProperties)
	group.GET("/properties/groups", m.handler.BrowsePropertyGroups)
	group.GET("/properties/:key", m.handler.BrowsePropertyUsers)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

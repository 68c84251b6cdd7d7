// Package properties provides the configuration property bounded context module.
package properties

import (
	apphttp "admin_console/internal/http"
	"admin_console/internal/properties/handler"
	"admin_console/internal/properties/repository"
	"admin_console/internal/properties/service"
	"admin_console/platform/latency"
)

// Module is the property catalog module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the property catalog module.
func NewModule(repo repository.Repository, delay *latency.Simulator) *Module {
	svc := service.New(repo, delay)
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "properties"
}

// Service returns the service layer for in-process consumers.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the property routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/properties")
	group.GET("", m.handler.ListProperties)
	group.GET("/groups", m.handler.ListPropertyGroups)
	group.GET("/:key", m.handler.ListPropertyUsers)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

// Package users provides the user directory bounded context module.
package users

import (
	apphttp "admin_console/internal/http"
	"admin_console/internal/users/handler"
	"admin_console/internal/users/repository"
	"admin_console/internal/users/service"
	"admin_console/platform/latency"
	"admin_console/platform/logger"
)

// Module is the user directory module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the user directory module.
func NewModule(repo repository.Repository, delay *latency.Simulator, log *logger.Logger) *Module {
	svc := service.New(repo, delay, log)
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// Service returns the service layer for in-process consumers.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the user directory routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/users")

	// Resolution lookups and identity details
	group.GET("/identity/:identityId", m.handler.GetUserIdentity)
	group.GET("/identities/:identityId", m.handler.LookupIdentity)
	group.GET("/email/:email", m.handler.LookupEmail)

	// Per-user sections
	group.GET("/:userId", m.handler.GetUserDetails)
	group.GET("/:userId/properties", m.handler.ListUserProperties)
	group.GET("/:userId/payment-info", m.handler.GetPaymentInfo)
	group.GET("/:userId/newsletter", m.handler.GetNewsletter)
	group.GET("/:userId/addresses", m.handler.ListAddresses)
	group.GET("/:userId/attributes", m.handler.ListUserAttributes)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

package handler

import (
	"net/http"

	"admin_console/internal/properties/service"
	"admin_console/internal/properties/transport"
	"admin_console/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the property catalog.
type Handler struct {
	svc *service.Service
}

const (
	msgInvalidRequest = "invalid request"
	msgProperties     = "Failed to fetch properties"
	msgPropertyGroups = "Failed to fetch property groups"
	msgPropertyUsers  = "Failed to fetch property users"
)

// New creates a new property handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListProperties returns every property.
// GET /api/properties
func (h *Handler) ListProperties(c *gin.Context) {
	result, err := h.svc.ListProperties(c.Request.Context())
	if httpkit.HandleError(c, err, msgProperties) {
		return
	}
	httpkit.OK(c, result)
}

// ListPropertyGroups returns every property group.
// GET /api/properties/groups
func (h *Handler) ListPropertyGroups(c *gin.Context) {
	result, err := h.svc.ListPropertyGroups(c.Request.Context())
	if httpkit.HandleError(c, err, msgPropertyGroups) {
		return
	}
	httpkit.OK(c, result)
}

// ListPropertyUsers returns the users carrying a property key.
// GET /api/properties/:key
func (h *Handler) ListPropertyUsers(c *gin.Context) {
	var req transport.PropertyKeyPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListPropertyUsers(c.Request.Context(), req.Key)
	if httpkit.HandleError(c, err, msgPropertyUsers) {
		return
	}
	httpkit.OK(c, result)
}

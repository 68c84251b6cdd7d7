package handler

import (
	"net/http"

	"admin_console/internal/console/service"
	"admin_console/internal/console/transport"
	"admin_console/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the console workflow.
type Handler struct {
	svc *service.Service
}

const (
	msgInvalidRequest = "invalid request"
	msgLookupFailed   = "Failed to look up user"
	msgSessionFailed  = "Failed to fetch console session"
)

// New creates a new console handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Lookup resolves the identifying input and aggregates the user's profile.
// GET /api/console/lookup?userId=|identityId=|email=
func (h *Handler) Lookup(c *gin.Context) {
	var req transport.LookupQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.Lookup(c.Request.Context(), c.GetHeader(transport.HeaderSession), service.Input{
		UserID:     req.UserID,
		IdentityID: req.IdentityID,
		Email:      req.Email,
	})
	if result.SessionID != "" {
		c.Header(transport.HeaderSession, result.SessionID)
	}
	if httpkit.HandleError(c, err, msgLookupFailed) {
		return
	}
	httpkit.OK(c, result)
}

// GetSession returns the current display state of a console session.
// GET /api/console/sessions/:sessionId
func (h *Handler) GetSession(c *gin.Context) {
	var req transport.SessionPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	view, err := h.svc.Session(c.Request.Context(), req.SessionID)
	if httpkit.HandleError(c, err, msgSessionFailed) {
		return
	}
	httpkit.OK(c, view)
}

// BrowseProperties lists properties, degrading to placeholder data.
// GET /api/console/properties
func (h *Handler) BrowseProperties(c *gin.Context) {
	httpkit.OK(c, h.svc.Browser().Properties(c.Request.Context()))
}

// BrowsePropertyGroups lists property groups, degrading to placeholder data.
// GET /api/console/properties/groups
func (h *Handler) BrowsePropertyGroups(c *gin.Context) {
	httpkit.OK(c, h.svc.Browser().Groups(c.Request.Context()))
}

// BrowsePropertyUsers lists the users of a property key, degrading to placeholder data.
// GET /api/console/properties/:key
func (h *Handler) BrowsePropertyUsers(c *gin.Context) {
	var req transport.PropertyKeyPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	httpkit.OK(c, h.svc.Browser().Users(c.Request.Context(), req.Key))
}

package handler

import (
	"net/http"

	"admin_console/internal/users/service"
	"admin_console/internal/users/transport"
	"admin_console/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the user directory.
type Handler struct {
	svc *service.Service
}

const (
	msgInvalidRequest   = "invalid request"
	msgUserDetails      = "Failed to fetch user details"
	msgIdentityDetails  = "Failed to fetch identity details"
	msgUserProperties   = "Failed to fetch user properties"
	msgPaymentInfo      = "Failed to fetch payment information"
	msgNewsletter       = "Failed to fetch newsletter information"
	msgAddresses        = "Failed to fetch addresses"
	msgUserAttributes   = "Failed to fetch user attributes"
	msgUserFromIdentity = "Failed to fetch user from identity"
	msgUserFromEmail    = "Failed to fetch user from email"
)

// New creates a new user directory handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// GetUserDetails returns the core user record.
// GET /api/users/:userId
func (h *Handler) GetUserDetails(c *gin.Context) {
	var req transport.UserPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.GetUserDetails(c.Request.Context(), req.UserID)
	if httpkit.HandleError(c, err, msgUserDetails) {
		return
	}
	httpkit.OK(c, result)
}

// ListUserProperties returns the properties set on a user.
// GET /api/users/:userId/properties
func (h *Handler) ListUserProperties(c *gin.Context) {
	var req transport.UserPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListUserProperties(c.Request.Context(), req.UserID)
	if httpkit.HandleError(c, err, msgUserProperties) {
		return
	}
	httpkit.OK(c, result)
}

// GetPaymentInfo returns the billing summary of a user.
// GET /api/users/:userId/payment-info
func (h *Handler) GetPaymentInfo(c *gin.Context) {
	var req transport.UserPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.GetPaymentInfo(c.Request.Context(), req.UserID)
	if httpkit.HandleError(c, err, msgPaymentInfo) {
		return
	}
	httpkit.OK(c, result)
}

// GetNewsletter returns the newsletter subscription of a user.
// GET /api/users/:userId/newsletter
func (h *Handler) GetNewsletter(c *gin.Context) {
	var req transport.UserPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.GetNewsletter(c.Request.Context(), req.UserID)
	if httpkit.HandleError(c, err, msgNewsletter) {
		return
	}
	httpkit.OK(c, result)
}

// ListAddresses returns the addresses of a user.
// GET /api/users/:userId/addresses
func (h *Handler) ListAddresses(c *gin.Context) {
	var req transport.UserPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListAddresses(c.Request.Context(), req.UserID)
	if httpkit.HandleError(c, err, msgAddresses) {
		return
	}
	httpkit.OK(c, result)
}

// ListUserAttributes returns the typed attributes of a user.
// GET /api/users/:userId/attributes
func (h *Handler) ListUserAttributes(c *gin.Context) {
	var req transport.UserPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListUserAttributes(c.Request.Context(), req.UserID)
	if httpkit.HandleError(c, err, msgUserAttributes) {
		return
	}
	httpkit.OK(c, result)
}

// GetUserIdentity returns the details of one identity.
// GET /api/users/identity/:identityId
func (h *Handler) GetUserIdentity(c *gin.Context) {
	var req transport.IdentityPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.GetUserIdentity(c.Request.Context(), req.IdentityID)
	if httpkit.HandleError(c, err, msgIdentityDetails) {
		return
	}
	httpkit.OK(c, result)
}

// LookupIdentity resolves an identity to its user.
// GET /api/users/identities/:identityId
func (h *Handler) LookupIdentity(c *gin.Context) {
	var req transport.IdentityPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.LookupIdentity(c.Request.Context(), req.IdentityID)
	if httpkit.HandleError(c, err, msgUserFromIdentity) {
		return
	}
	httpkit.OK(c, result)
}

// LookupEmail resolves an email address to its user.
// GET /api/users/email/:email
func (h *Handler) LookupEmail(c *gin.Context) {
	var req transport.EmailPath
	if err := c.ShouldBindUri(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.LookupEmail(c.Request.Context(), req.Email)
	if httpkit.HandleError(c, err, msgUserFromEmail) {
		return
	}
	httpkit.OK(c, result)
}

package adapters

import (
	"context"

	consolesvc "admin_console/internal/console/service"
	"admin_console/internal/profile"
	propertysvc "admin_console/internal/properties/service"
	usersvc "admin_console/internal/users/service"
)

// DirectoryAdapter adapts the users and properties services for use by the
// console domain. It implements console/service.DataSource in-process, so a
// server-side lookup never makes a network hop.
type DirectoryAdapter struct {
	users      *usersvc.Service
	properties *propertysvc.Service
}

// NewDirectoryAdapter creates an adapter over the directory services.
func NewDirectoryAdapter(users *usersvc.Service, properties *propertysvc.Service) *DirectoryAdapter {
	return &DirectoryAdapter{users: users, properties: properties}
}

func (a *DirectoryAdapter) LookupIdentity(ctx context.Context, identityID string) (profile.IdentityLink, error) {
	return a.users.LookupIdentity(ctx, identityID)
}

func (a *DirectoryAdapter) LookupEmail(ctx context.Context, email string) (profile.EmailLink, error) {
	return a.users.LookupEmail(ctx, email)
}

func (a *DirectoryAdapter) GetUserDetails(ctx context.Context, userID string) (profile.UserDetails, error) {
	return a.users.GetUserDetails(ctx, userID)
}

func (a *DirectoryAdapter) GetUserIdentity(ctx context.Context, identityID string) (profile.UserIdentity, error) {
	return a.users.GetUserIdentity(ctx, identityID)
}

func (a *DirectoryAdapter) ListUserProperties(ctx context.Context, userID string) ([]profile.UserProperty, error) {
	return a.users.ListUserProperties(ctx, userID)
}

func (a *DirectoryAdapter) GetPaymentInfo(ctx context.Context, userID string) (profile.PaymentInfo, error) {
	return a.users.GetPaymentInfo(ctx, userID)
}

func (a *DirectoryAdapter) GetNewsletter(ctx context.Context, userID string) (profile.Newsletter, error) {
	return a.users.GetNewsletter(ctx, userID)
}

func (a *DirectoryAdapter) ListAddresses(ctx context.Context, userID string) ([]profile.Address, error) {
	return a.users.ListAddresses(ctx, userID)
}

func (a *DirectoryAdapter) ListUserAttributes(ctx context.Context, userID string) ([]profile.UserAttribute, error) {
	return a.users.ListUserAttributes(ctx, userID)
}

func (a *DirectoryAdapter) ListProperties(ctx context.Context) ([]profile.Property, error) {
	return a.properties.ListProperties(ctx)
}

func (a *DirectoryAdapter) ListPropertyGroups(ctx context.Context) ([]profile.PropertyGroup, error) {
	return a.properties.ListPropertyGroups(ctx)
}

func (a *DirectoryAdapter) ListPropertyUsers(ctx context.Context, key string) (profile.PropertyUsers, error) {
	return a.properties.ListPropertyUsers(ctx, key)
}

var _ consolesvc.DataSource = (*DirectoryAdapter)(nil)

package service

import (
	"context"

	"admin_console/internal/profile"
)

// IdentityLookup maps an identity ID to its user.
type IdentityLookup interface {
	LookupIdentity(ctx context.Context, identityID string) (profile.IdentityLink, error)
}

// EmailLookup maps an email address to its user.
type EmailLookup interface {
	LookupEmail(ctx context.Context, email string) (profile.EmailLink, error)
}

// ProfileSource serves the seven profile sections.
type ProfileSource interface {
	GetUserDetails(ctx context.Context, userID string) (profile.UserDetails, error)
	GetUserIdentity(ctx context.Context, identityID string) (profile.UserIdentity, error)
	ListUserProperties(ctx context.Context, userID string) ([]profile.UserProperty, error)
	GetPaymentInfo(ctx context.Context, userID string) (profile.PaymentInfo, error)
	GetNewsletter(ctx context.Context, userID string) (profile.Newsletter, error)
	ListAddresses(ctx context.Context, userID string) ([]profile.Address, error)
	ListUserAttributes(ctx context.Context, userID string) ([]profile.UserAttribute, error)
}

// PropertySource serves the property catalog.
type PropertySource interface {
	ListProperties(ctx context.Context) ([]profile.Property, error)
	ListPropertyGroups(ctx context.Context) ([]profile.PropertyGroup, error)
	ListPropertyUsers(ctx context.Context, key string) (profile.PropertyUsers, error)
}

// DataSource is everything the console reads. It is implemented in-process
// over the directory services and remotely by the HTTP client.
type DataSource interface {
	IdentityLookup
	EmailLookup
	ProfileSource
	PropertySource
}

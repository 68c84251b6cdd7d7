package repository

import (
	"context"

	"admin_console/internal/profile"
)

// EmailMatch is a canonical email mapping.
type EmailMatch struct {
	UserID     string
	IdentityID string
}

// ProfileReader provides the per-user payloads.
type ProfileReader interface {
	UserDetails(ctx context.Context, userID string) (profile.UserDetails, error)
	UserIdentity(ctx context.Context, identityID string) (profile.UserIdentity, error)
	UserProperties(ctx context.Context, userID string) ([]profile.UserProperty, error)
	PaymentInfo(ctx context.Context, userID string) (profile.PaymentInfo, error)
	Newsletter(ctx context.Context, userID string) (profile.Newsletter, error)
	Addresses(ctx context.Context, userID string) ([]profile.Address, error)
	UserAttributes(ctx context.Context, userID string) ([]profile.UserAttribute, error)
}

// IdentityIndex provides the canonical identity and email mappings.
// The bool result reports whether a canonical mapping exists.
type IdentityIndex interface {
	UserForIdentity(ctx context.Context, identityID string) (string, bool, error)
	UserForEmail(ctx context.Context, email string) (EmailMatch, bool, error)
}

// Repository combines all user directory read operations.
type Repository interface {
	ProfileReader
	IdentityIndex
}

// Package repository serves user directory data from the fixture catalog.
package repository

import (
	"context"

	"admin_console/internal/fixtures"
	"admin_console/internal/profile"
)

// FixtureRepository implements Repository on top of a fixtures.Catalog.
type FixtureRepository struct {
	catalog *fixtures.Catalog
}

// New creates a repository over catalog.
func New(catalog *fixtures.Catalog) *FixtureRepository {
	return &FixtureRepository{catalog: catalog}
}

func (r *FixtureRepository) UserDetails(_ context.Context, userID string) (profile.UserDetails, error) {
	return r.catalog.UserDetails(userID), nil
}

func (r *FixtureRepository) UserIdentity(_ context.Context, identityID string) (profile.UserIdentity, error) {
	return r.catalog.UserIdentity(identityID), nil
}

func (r *FixtureRepository) UserProperties(_ context.Context, userID string) ([]profile.UserProperty, error) {
	return r.catalog.UserProperties(userID), nil
}

func (r *FixtureRepository) PaymentInfo(_ context.Context, userID string) (profile.PaymentInfo, error) {
	return r.catalog.PaymentInfo(userID), nil
}

func (r *FixtureRepository) Newsletter(_ context.Context, userID string) (profile.Newsletter, error) {
	return r.catalog.Newsletter(userID), nil
}

func (r *FixtureRepository) Addresses(_ context.Context, userID string) ([]profile.Address, error) {
	return r.catalog.Addresses(userID), nil
}

func (r *FixtureRepository) UserAttributes(_ context.Context, userID string) ([]profile.UserAttribute, error) {
	return r.catalog.UserAttributes(userID), nil
}

func (r *FixtureRepository) UserForIdentity(_ context.Context, identityID string) (string, bool, error) {
	userID, ok := r.catalog.Identities[identityID]
	return userID, ok, nil
}

func (r *FixtureRepository) UserForEmail(_ context.Context, email string) (EmailMatch, bool, error) {
	m, ok := r.catalog.Emails[email]
	if !ok {
		return EmailMatch{}, false, nil
	}
	return EmailMatch{UserID: m.UserID, IdentityID: m.IdentityID}, true, nil
}

var _ Repository = (*FixtureRepository)(nil)

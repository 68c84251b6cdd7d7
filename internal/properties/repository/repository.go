// Package repository serves the configuration property catalog.
package repository

import (
	"context"

	"admin_console/internal/fixtures"
	"admin_console/internal/profile"
)

// Repository provides read access to properties and groups.
type Repository interface {
	ListProperties(ctx context.Context) ([]profile.Property, error)
	ListGroups(ctx context.Context) ([]profile.PropertyGroup, error)
	// UsersWithProperty returns the users carrying key; unknown keys yield an empty list.
	UsersWithProperty(ctx context.Context, key string) ([]string, error)
}

// FixtureRepository implements Repository on top of a fixtures.Catalog.
type FixtureRepository struct {
	catalog *fixtures.Catalog
}

// New creates a repository over catalog.
func New(catalog *fixtures.Catalog) *FixtureRepository {
	return &FixtureRepository{catalog: catalog}
}

func (r *FixtureRepository) ListProperties(context.Context) ([]profile.Property, error) {
	return append([]profile.Property{}, r.catalog.Properties...), nil
}

func (r *FixtureRepository) ListGroups(context.Context) ([]profile.PropertyGroup, error) {
	out := make([]profile.PropertyGroup, 0, len(r.catalog.PropertyGroups))
	for _, g := range r.catalog.PropertyGroups {
		g.Properties = append([]profile.Property{}, g.Properties...)
		out = append(out, g)
	}
	return out, nil
}

func (r *FixtureRepository) UsersWithProperty(_ context.Context, key string) ([]string, error) {
	return append([]string{}, r.catalog.PropertyUsers[key]...), nil
}

var _ Repository = (*FixtureRepository)(nil)

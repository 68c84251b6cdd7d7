package service

import (
	"context"
	"time"

	"admin_console/internal/profile"
	"admin_console/internal/properties/repository"
	"admin_console/platform/latency"
)

const (
	delayListProperties = 1000 * time.Millisecond
	delayListGroups     = 1200 * time.Millisecond
	delayPropertyUsers  = 800 * time.Millisecond
)

// Service provides the property catalog reads.
type Service struct {
	repo  repository.Repository
	delay *latency.Simulator
}

// New creates a new property catalog service.
func New(repo repository.Repository, delay *latency.Simulator) *Service {
	return &Service{repo: repo, delay: delay}
}

// ListProperties returns every configuration property.
func (s *Service) ListProperties(ctx context.Context) ([]profile.Property, error) {
	if err := s.delay.Wait(ctx, delayListProperties); err != nil {
		return nil, err
	}
	return s.repo.ListProperties(ctx)
}

// ListPropertyGroups returns every property group.
func (s *Service) ListPropertyGroups(ctx context.Context) ([]profile.PropertyGroup, error) {
	if err := s.delay.Wait(ctx, delayListGroups); err != nil {
		return nil, err
	}
	return s.repo.ListGroups(ctx)
}

// ListPropertyUsers returns the users carrying key. An unknown key is not an
// error; its user list is simply empty.
func (s *Service) ListPropertyUsers(ctx context.Context, key string) (profile.PropertyUsers, error) {
	if err := s.delay.Wait(ctx, delayPropertyUsers); err != nil {
		return profile.PropertyUsers{}, err
	}
	users, err := s.repo.UsersWithProperty(ctx, key)
	if err != nil {
		return profile.PropertyUsers{}, err
	}
	if users == nil {
		users = []string{}
	}
	return profile.PropertyUsers{PropertyKey: key, UserIDs: users}, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"admin_console/internal/profile"
	"admin_console/internal/users/repository"
	"admin_console/platform/latency"
	"admin_console/platform/logger"
)

// Simulated upstream latencies per endpoint.
const (
	delayUserDetails    = 800 * time.Millisecond
	delayUserProperties = 700 * time.Millisecond
	delayPaymentInfo    = 900 * time.Millisecond
	delayNewsletter     = 500 * time.Millisecond
	delayAddresses      = 650 * time.Millisecond
	delayUserAttributes = 750 * time.Millisecond
	delayUserIdentity   = 600 * time.Millisecond
	delayIdentityLookup = 600 * time.Millisecond
	delayEmailLookup    = 700 * time.Millisecond

	unknownProvider = "unknown"
	identitySuffix  = 6
)

// Service provides the user directory reads.
type Service struct {
	repo  repository.Repository
	delay *latency.Simulator
	log   *logger.Logger
}

// New creates a new user directory service.
func New(repo repository.Repository, delay *latency.Simulator, log *logger.Logger) *Service {
	return &Service{repo: repo, delay: delay, log: log}
}

// GetUserDetails returns the core record of a user.
func (s *Service) GetUserDetails(ctx context.Context, userID string) (profile.UserDetails, error) {
	if err := s.delay.Wait(ctx, delayUserDetails); err != nil {
		return profile.UserDetails{}, err
	}
	return s.repo.UserDetails(ctx, userID)
}

// GetUserIdentity returns the details of one login identity.
func (s *Service) GetUserIdentity(ctx context.Context, identityID string) (profile.UserIdentity, error) {
	if err := s.delay.Wait(ctx, delayUserIdentity); err != nil {
		return profile.UserIdentity{}, err
	}
	return s.repo.UserIdentity(ctx, identityID)
}

// ListUserProperties returns the property values set on a user.
func (s *Service) ListUserProperties(ctx context.Context, userID string) ([]profile.UserProperty, error) {
	if err := s.delay.Wait(ctx, delayUserProperties); err != nil {
		return nil, err
	}
	return s.repo.UserProperties(ctx, userID)
}

// GetPaymentInfo returns the billing summary of a user.
func (s *Service) GetPaymentInfo(ctx context.Context, userID string) (profile.PaymentInfo, error) {
	if err := s.delay.Wait(ctx, delayPaymentInfo); err != nil {
		return profile.PaymentInfo{}, err
	}
	return s.repo.PaymentInfo(ctx, userID)
}

// GetNewsletter returns the newsletter subscription of a user.
func (s *Service) GetNewsletter(ctx context.Context, userID string) (profile.Newsletter, error) {
	if err := s.delay.Wait(ctx, delayNewsletter); err != nil {
		return profile.Newsletter{}, err
	}
	return s.repo.Newsletter(ctx, userID)
}

// ListAddresses returns the postal addresses of a user.
func (s *Service) ListAddresses(ctx context.Context, userID string) ([]profile.Address, error) {
	if err := s.delay.Wait(ctx, delayAddresses); err != nil {
		return nil, err
	}
	return s.repo.Addresses(ctx, userID)
}

// ListUserAttributes returns the typed attributes of a user.
func (s *Service) ListUserAttributes(ctx context.Context, userID string) ([]profile.UserAttribute, error) {
	if err := s.delay.Wait(ctx, delayUserAttributes); err != nil {
		return nil, err
	}
	return s.repo.UserAttributes(ctx, userID)
}

// LookupIdentity maps an identity ID to its user. Identities without a
// canonical mapping get a user ID derived from their last six characters.
func (s *Service) LookupIdentity(ctx context.Context, identityID string) (profile.IdentityLink, error) {
	if err := s.delay.Wait(ctx, delayIdentityLookup); err != nil {
		return profile.IdentityLink{}, err
	}
	userID, ok, err := s.repo.UserForIdentity(ctx, identityID)
	if err != nil {
		return profile.IdentityLink{}, err
	}
	if !ok {
		userID = userIDFromIdentity(identityID)
		s.log.Debug("identity has no canonical user, derived one", "identityId", identityID, "userId", userID)
	}
	return profile.IdentityLink{
		IdentityID: identityID,
		UserID:     userID,
		Provider:   providerOf(identityID),
		Found:      true,
	}, nil
}

// LookupEmail maps an email address to its user. Addresses without a
// canonical mapping get a user ID synthesized from the local part and an
// "email|" identity.
func (s *Service) LookupEmail(ctx context.Context, email string) (profile.EmailLink, error) {
	if err := s.delay.Wait(ctx, delayEmailLookup); err != nil {
		return profile.EmailLink{}, err
	}
	match, ok, err := s.repo.UserForEmail(ctx, email)
	if err != nil {
		return profile.EmailLink{}, err
	}
	if !ok {
		match = repository.EmailMatch{
			UserID:     userIDFromEmail(email),
			IdentityID: "email|" + email,
		}
		s.log.Debug("email has no canonical user, synthesized one", "email", email, "userId", match.UserID)
	}
	return profile.EmailLink{
		Email:      email,
		UserID:     match.UserID,
		IdentityID: match.IdentityID,
		Found:      true,
	}, nil
}

// userIDFromIdentity returns "user_" plus the last six characters of the identity.
func userIDFromIdentity(identityID string) string {
	runes := []rune(identityID)
	if len(runes) > identitySuffix {
		runes = runes[len(runes)-identitySuffix:]
	}
	return "user_" + string(runes)
}

// userIDFromEmail returns "user_" plus the local part with every
// non-alphanumeric character replaced by an underscore.
func userIDFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	var b strings.Builder
	b.Grow(len("user_") + len(local))
	b.WriteString("user_")
	for _, r := range local {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func providerOf(identityID string) string {
	provider, _, _ := strings.Cut(identityID, "|")
	if provider == "" {
		return unknownProvider
	}
	return provider
}

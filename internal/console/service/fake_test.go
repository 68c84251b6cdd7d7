package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"admin_console/internal/profile"
)

var errSourceDown = errors.New("source down")

// fakeSource is an in-memory DataSource whose sections can be failed or
// blocked individually.
type fakeSource struct {
	mu       sync.Mutex
	failing  map[SectionID]bool
	hooks    map[SectionID]func(ctx context.Context) error
	calls    map[string]*atomic.Int32
	identity map[string]string
	emails   map[string]profile.EmailLink

	lookupErr error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		failing: make(map[SectionID]bool),
		hooks:   make(map[SectionID]func(ctx context.Context) error),
		calls:   make(map[string]*atomic.Int32),
		identity: map[string]string{
			"auth0|123456789": "user_001",
		},
		emails: map[string]profile.EmailLink{
			"john.doe@example.com": {Email: "john.doe@example.com", UserID: "user_001", IdentityID: "auth0|123456789", Found: true},
		},
	}
}

func (f *fakeSource) fail(ids ...SectionID) *fakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		f.failing[id] = true
	}
	return f
}

func (f *fakeSource) hook(id SectionID, fn func(ctx context.Context) error) *fakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[id] = fn
	return f
}

func (f *fakeSource) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.calls[name]
	if !ok {
		return 0
	}
	return int(c.Load())
}

func (f *fakeSource) enter(ctx context.Context, name string, id SectionID) error {
	f.mu.Lock()
	c, ok := f.calls[name]
	if !ok {
		c = &atomic.Int32{}
		f.calls[name] = c
	}
	hook := f.hooks[id]
	failing := f.failing[id]
	f.mu.Unlock()

	c.Add(1)
	if hook != nil {
		if err := hook(ctx); err != nil {
			return err
		}
	}
	if failing {
		return errSourceDown
	}
	return nil
}

func (f *fakeSource) LookupIdentity(ctx context.Context, identityID string) (profile.IdentityLink, error) {
	if err := f.enter(ctx, "LookupIdentity", ""); err != nil {
		return profile.IdentityLink{}, err
	}
	if f.lookupErr != nil {
		return profile.IdentityLink{}, f.lookupErr
	}
	userID, ok := f.identity[identityID]
	if !ok {
		userID = "user_from_" + identityID
	}
	return profile.IdentityLink{IdentityID: identityID, UserID: userID, Provider: "test", Found: true}, nil
}

func (f *fakeSource) LookupEmail(ctx context.Context, email string) (profile.EmailLink, error) {
	if err := f.enter(ctx, "LookupEmail", ""); err != nil {
		return profile.EmailLink{}, err
	}
	if f.lookupErr != nil {
		return profile.EmailLink{}, f.lookupErr
	}
	if link, ok := f.emails[email]; ok {
		return link, nil
	}
	return profile.EmailLink{Email: email, UserID: "user_for_" + email, Found: true}, nil
}

func (f *fakeSource) GetUserDetails(ctx context.Context, userID string) (profile.UserDetails, error) {
	if err := f.enter(ctx, "GetUserDetails", SectionUserDetails); err != nil {
		return profile.UserDetails{}, err
	}
	return profile.UserDetails{UserID: userID, Name: "User " + userID, Email: userID + "@example.com", Status: "active"}, nil
}

func (f *fakeSource) GetUserIdentity(ctx context.Context, identityID string) (profile.UserIdentity, error) {
	if err := f.enter(ctx, "GetUserIdentity", SectionUserIdentity); err != nil {
		return profile.UserIdentity{}, err
	}
	return profile.UserIdentity{IdentityID: identityID, Provider: "test", Verified: true, LoginCount: 7}, nil
}

func (f *fakeSource) ListUserProperties(ctx context.Context, userID string) ([]profile.UserProperty, error) {
	if err := f.enter(ctx, "ListUserProperties", SectionUserProperties); err != nil {
		return nil, err
	}
	return []profile.UserProperty{{Key: "owner", Value: userID}}, nil
}

func (f *fakeSource) GetPaymentInfo(ctx context.Context, userID string) (profile.PaymentInfo, error) {
	if err := f.enter(ctx, "GetPaymentInfo", SectionPaymentInfo); err != nil {
		return profile.PaymentInfo{}, err
	}
	return profile.PaymentInfo{CustomerID: "cus_" + userID, Plan: "Free"}, nil
}

func (f *fakeSource) GetNewsletter(ctx context.Context, userID string) (profile.Newsletter, error) {
	if err := f.enter(ctx, "GetNewsletter", SectionNewsletter); err != nil {
		return profile.Newsletter{}, err
	}
	return profile.Newsletter{Subscribed: false, Preferences: []string{}}, nil
}

func (f *fakeSource) ListAddresses(ctx context.Context, userID string) ([]profile.Address, error) {
	if err := f.enter(ctx, "ListAddresses", SectionAddresses); err != nil {
		return nil, err
	}
	return []profile.Address{{ID: "addr_" + userID, Type: "billing"}}, nil
}

func (f *fakeSource) ListUserAttributes(ctx context.Context, userID string) ([]profile.UserAttribute, error) {
	if err := f.enter(ctx, "ListUserAttributes", SectionUserAttributes); err != nil {
		return nil, err
	}
	return []profile.UserAttribute{{Key: "uid", Value: userID, Type: "string"}}, nil
}

func (f *fakeSource) ListProperties(ctx context.Context) ([]profile.Property, error) {
	if err := f.enter(ctx, "ListProperties", "properties"); err != nil {
		return nil, err
	}
	return []profile.Property{{Key: "theme", Value: "dark"}}, nil
}

func (f *fakeSource) ListPropertyGroups(ctx context.Context) ([]profile.PropertyGroup, error) {
	if err := f.enter(ctx, "ListPropertyGroups", "property_groups"); err != nil {
		return nil, err
	}
	return []profile.PropertyGroup{{ID: "g", Name: "G"}}, nil
}

func (f *fakeSource) ListPropertyUsers(ctx context.Context, key string) (profile.PropertyUsers, error) {
	if err := f.enter(ctx, "ListPropertyUsers", "property_users"); err != nil {
		return profile.PropertyUsers{}, err
	}
	if key != "theme" {
		return profile.PropertyUsers{PropertyKey: key}, nil
	}
	return profile.PropertyUsers{PropertyKey: key, UserIDs: []string{"user_abc123"}}, nil
}

var _ DataSource = (*fakeSource)(nil)

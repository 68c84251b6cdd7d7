package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"admin_console/internal/profile"
	"admin_console/platform/apperr"
	"admin_console/platform/validator"
)

func newTestResolver(src *fakeSource) *Resolver {
	return NewResolver(src, src, validator.New(), time.Second)
}

func TestResolveRejectsInvalidInputWithoutLookups(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		msg  string
	}{
		{"empty", Input{}, MsgNoInput},
		{"whitespace only", Input{UserID: "  ", IdentityID: "\t", Email: " \n"}, MsgNoInput},
		{"markup only", Input{Email: "<b></b>"}, MsgNoInput},
		{"user and identity", Input{UserID: "user_001", IdentityID: "auth0|1"}, MsgAmbiguousInput},
		{"user and email", Input{UserID: "user_001", Email: "a@example.com"}, MsgAmbiguousInput},
		{"identity and email", Input{IdentityID: "auth0|1", Email: "a@example.com"}, MsgAmbiguousInput},
		{"all three", Input{UserID: "u", IdentityID: "i", Email: "e"}, MsgAmbiguousInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := newFakeSource()
			_, err := newTestResolver(src).Resolve(context.Background(), tc.in)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var domainErr *apperr.Error
			if !errors.As(err, &domainErr) || domainErr.Message != tc.msg {
				t.Fatalf("expected message %q, got %v", tc.msg, err)
			}
			if src.count("LookupIdentity")+src.count("LookupEmail") != 0 {
				t.Fatal("validation failure must not call any lookup")
			}
		})
	}
}

func TestResolveIdentityUsesLookupResultExactly(t *testing.T) {
	for _, identityID := range []string{"auth0|123456789", "okta|abcdef", "weird id with spaces"} {
		src := newFakeSource()
		want, _ := src.LookupIdentity(context.Background(), identityID)

		got, err := newTestResolver(src).Resolve(context.Background(), Input{IdentityID: identityID})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", identityID, err)
		}
		if got.UserID != want.UserID {
			t.Fatalf("%s: expected user %q, got %q", identityID, want.UserID, got.UserID)
		}
		if got.IdentityID != identityID {
			t.Fatalf("%s: expected identity echoed, got %q", identityID, got.IdentityID)
		}
	}
}

func TestResolveIdentityTrimsInput(t *testing.T) {
	src := newFakeSource()
	got, err := newTestResolver(src).Resolve(context.Background(), Input{IdentityID: "  auth0|123456789 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != "user_001" || got.IdentityID != "auth0|123456789" {
		t.Fatalf("unexpected resolution %+v", got)
	}
}

func TestResolvePassesMarkupThroughVerbatim(t *testing.T) {
	src := newFakeSource()
	r := newTestResolver(src)

	const identityID = "saml|R&amp;D-<ops>-42"
	got, err := r.Resolve(context.Background(), Input{IdentityID: " " + identityID + "\n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IdentityID != identityID {
		t.Fatalf("identity id not echoed: want %q got %q", identityID, got.IdentityID)
	}
	if got.UserID != "user_from_"+identityID {
		t.Fatalf("lookup used a rewritten key, got user %q", got.UserID)
	}

	const email = "r&amp;d<team>@example.com"
	byEmail, err := r.Resolve(context.Background(), Input{Email: email})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.UserID != "user_for_"+email {
		t.Fatalf("email lookup used a rewritten key, got user %q", byEmail.UserID)
	}
}

func TestResolveEmail(t *testing.T) {
	src := newFakeSource()
	got, err := newTestResolver(src).Resolve(context.Background(), Input{Email: "john.doe@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != "user_001" || got.IdentityID != "auth0|123456789" {
		t.Fatalf("unexpected resolution %+v", got)
	}
	if src.count("LookupEmail") != 1 || src.count("LookupIdentity") != 0 {
		t.Fatal("expected exactly one email lookup")
	}
}

func TestResolveUserIDNeedsNoLookup(t *testing.T) {
	src := newFakeSource()
	got, err := newTestResolver(src).Resolve(context.Background(), Input{UserID: "user_042"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (ResolvedIdentity{UserID: "user_042"}) {
		t.Fatalf("unexpected resolution %+v", got)
	}
	if src.count("LookupEmail")+src.count("LookupIdentity") != 0 {
		t.Fatal("user ID input must not trigger a lookup")
	}
}

func TestResolveLookupFailureIsResolutionError(t *testing.T) {
	src := newFakeSource()
	src.lookupErr = errSourceDown
	r := newTestResolver(src)

	for _, in := range []Input{{IdentityID: "auth0|1"}, {Email: "a@example.com"}} {
		_, err := r.Resolve(context.Background(), in)
		if !apperr.Is(err, apperr.KindUnavailable) {
			t.Fatalf("expected resolution error for %+v, got %v", in, err)
		}
		if !errors.Is(err, errSourceDown) {
			t.Fatalf("expected cause to be wrapped, got %v", err)
		}
	}
}

type emptyIdentityLookup struct{}

func (emptyIdentityLookup) LookupIdentity(_ context.Context, identityID string) (profile.IdentityLink, error) {
	return profile.IdentityLink{IdentityID: identityID, Found: true}, nil
}

func TestResolveEmptyUserIDIsResolutionError(t *testing.T) {
	r := NewResolver(emptyIdentityLookup{}, newFakeSource(), validator.New(), time.Second)

	_, err := r.Resolve(context.Background(), Input{IdentityID: "blank|1"})
	if !apperr.Is(err, apperr.KindUnavailable) || !errors.Is(err, errEmptyUserID) {
		t.Fatalf("expected empty user resolution error, got %v", err)
	}
}

func TestResolveIgnoresCallerCancellation(t *testing.T) {
	src := newFakeSource()
	src.hook("", func(ctx context.Context) error { return ctx.Err() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := newTestResolver(src).Resolve(ctx, Input{IdentityID: "auth0|123456789"})
	if err != nil {
		t.Fatalf("issued lookup should complete despite cancellation: %v", err)
	}
	if got.UserID != "user_001" {
		t.Fatalf("unexpected resolution %+v", got)
	}
}

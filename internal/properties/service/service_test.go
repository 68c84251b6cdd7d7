package service

import (
	"context"
	"testing"

	"admin_console/internal/fixtures"
	"admin_console/internal/properties/repository"
	"admin_console/platform/latency"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	catalog, err := fixtures.Default()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	return New(repository.New(catalog), latency.None())
}

func TestListPropertyUsersUnknownKeyIsEmpty(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ListPropertyUsers(context.Background(), "nonexistent_key")
	if err != nil {
		t.Fatalf("unknown key must not fail: %v", err)
	}
	if result.UserIDs == nil || len(result.UserIDs) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", result.UserIDs)
	}
	if result.PropertyKey != "nonexistent_key" {
		t.Fatalf("expected key echoed, got %q", result.PropertyKey)
	}
}

func TestListPropertyUsersKnownKey(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ListPropertyUsers(context.Background(), "theme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.UserIDs) != 3 || result.UserIDs[0] != "user_abc123" {
		t.Fatalf("unexpected users %v", result.UserIDs)
	}
}

func TestListsAreIndependentCopies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	groups, err := svc.ListPropertyGroups(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 5 {
		t.Fatalf("expected 5 groups, got %d", len(groups))
	}
	groups[0].Properties[0].Value = "mutated"

	again, _ := svc.ListPropertyGroups(ctx)
	if again[0].Properties[0].Value != "dark" {
		t.Fatalf("catalog mutated through returned slice")
	}

	props, _ := svc.ListProperties(ctx)
	if len(props) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(props))
	}
}

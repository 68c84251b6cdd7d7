package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitScalesDelay(t *testing.T) {
	sim := New(0.01)
	start := time.Now()
	if err := sim.Wait(context.Background(), time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("expected at least 10ms, waited %s", elapsed)
	}
}

func TestWaitDisabled(t *testing.T) {
	start := time.Now()
	if err := None().Wait(context.Background(), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Fatal("disabled simulator should not wait")
	}
	if err := New(-1).Wait(context.Background(), time.Hour); err != nil {
		t.Fatalf("negative scale should behave as disabled, got %v", err)
	}
}

func TestWaitHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(1).Wait(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

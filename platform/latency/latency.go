// Package latency simulates upstream response times for the mock directory.
package latency

import (
	"context"
	"time"
)

// Simulator delays calls by a base duration multiplied by a scale factor.
// A zero scale disables the delay entirely.
type Simulator struct {
	scale float64
}

// New returns a simulator with the given scale; negative values are treated as zero.
func New(scale float64) *Simulator {
	if scale < 0 {
		scale = 0
	}
	return &Simulator{scale: scale}
}

// None returns a simulator that never waits.
func None() *Simulator {
	return &Simulator{}
}

// Wait blocks for the scaled delay or until ctx is done.
func (s *Simulator) Wait(ctx context.Context, base time.Duration) error {
	if s == nil || s.scale == 0 || base <= 0 {
		return ctx.Err()
	}
	d := time.Duration(float64(base) * s.scale)
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

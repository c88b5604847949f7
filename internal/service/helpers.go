package service

import (
	"context"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
)

// observePropagation reports a budget propagation outcome through the
// observer. A failed propagation is logged here and nowhere else: the
// triggering edit has already succeeded by the time this runs.
func observePropagation(ctx context.Context, obs UseCaseObserver, kind domain.ResourceKind, resourceID string, started time.Time, result engine.PropagationResult) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "budget_propagation",
		Duration:  time.Since(started),
		Success:   result.Status != engine.StatusFailed,
		Err:       result.Err,
		StartedAt: started,
		Fields: map[string]any{
			"resource_kind": string(kind),
			"resource_id":   resourceID,
			"status":        string(result.Status),
			"updated_items": result.Updated,
		},
	})
}

// floatChanged compares two optional rates.
func floatChanged(a, b *float64) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil || b == nil:
		return true
	}
	return *a != *b
}

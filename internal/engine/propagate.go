package engine

import (
	"context"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
	"callsheet/internal/repository"
)

// Change describes one resource mutation for propagation: which resource, which
// field groups changed, and a snapshot of the resource's current values.
type Change struct {
	Kind       domain.ResourceKind
	ResourceID string

	// DisplayChanged is set when a name/role/actor/character field changed.
	DisplayChanged bool
	// RateChanged is set when any rate field changed.
	RateChanged bool

	Snapshot Snapshot
}

// Relevant reports whether the change touches any field the budget sync cares about.
func (c Change) Relevant() bool {
	return c.DisplayChanged || c.RateChanged
}

// Propagator republishes derived budget item fields after a resource edit.
// All updates for one call commit as a single batch, or none do. Propagate
// never returns a Go error: failures are reported in the result so the
// triggering edit can proceed regardless.
type Propagator struct {
	items repository.BudgetItemRepo
	uow   db.UnitOfWork
	now   func() time.Time
}

// NewPropagator creates a Propagator over the given budget item repo and
// unit of work.
func NewPropagator(items repository.BudgetItemRepo, uow db.UnitOfWork) *Propagator {
	return &Propagator{items: items, uow: uow, now: func() time.Time { return time.Now().UTC() }}
}

// Propagate finds every budget item linked to the changed resource and rewrites
// its derived fields (description, unit rate, estimated amount).
//
// Rate sync only applies to items that already carry a unit rate; an item with
// no rate set is not rate-synced. When the unit rate is recomputed and the item
// has a quantity, the estimated amount is recomputed as rate * quantity.
func (p *Propagator) Propagate(ctx context.Context, change Change) PropagationResult {
	if !change.Relevant() {
		return skipped()
	}

	items, err := p.items.ListByLinkedResource(ctx, change.Kind, change.ResourceID)
	if err != nil {
		return failed(err)
	}
	if len(items) == 0 {
		return skipped()
	}

	now := p.now()
	for _, item := range items {
		p.applyChange(item, change, now)
	}

	err = p.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteBudgetItemRepo(tx)
		for _, item := range items {
			if err := txItems.UpdateDerived(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return failed(err)
	}
	return propagated(len(items))
}

// applyChange rewrites one item's derived fields in place.
func (p *Propagator) applyChange(item *domain.BudgetItem, change Change, now time.Time) {
	if change.DisplayChanged {
		item.Description = ComposeDescription(change.Kind, change.Snapshot)
	}
	if change.RateChanged && item.UnitRate != nil {
		if rate := RateForUnit(change.Kind, change.Snapshot, item.Unit); rate != nil {
			r := *rate
			item.UnitRate = &r
			if item.Quantity != nil {
				est := r * *item.Quantity
				item.EstimatedAmount = &est
			}
		}
	}
	item.UpdatedAt = now
}

package engine

// PropagationStatus names the outcome of one propagation call. Making the
// outcome a value instead of a logged-and-swallowed error lets callers and
// tests assert on it directly.
type PropagationStatus string

const (
	// StatusPropagated means at least one linked budget item was republished.
	StatusPropagated PropagationStatus = "propagated"
	// StatusSkipped means no linked item existed or no relevant field changed;
	// no batch was built and no write occurred.
	StatusSkipped PropagationStatus = "skipped"
	// StatusFailed means a read or the batched write failed. The triggering
	// resource edit is unaffected.
	StatusFailed PropagationStatus = "failed"
)

// PropagationResult reports what a Propagate call did.
type PropagationResult struct {
	Status  PropagationStatus
	Updated int
	Err     error
}

func propagated(n int) PropagationResult {
	return PropagationResult{Status: StatusPropagated, Updated: n}
}

func skipped() PropagationResult {
	return PropagationResult{Status: StatusSkipped}
}

func failed(err error) PropagationResult {
	return PropagationResult{Status: StatusFailed, Err: err}
}

// ConflictReport lists resource ids that are already committed to another
// event on the same shooting day, one slice per kind. It is advisory: the
// caller decides whether to warn or proceed.
type ConflictReport struct {
	Crew      []string
	Cast      []string
	Equipment []string
}

// Empty reports whether no conflicts were found.
func (r ConflictReport) Empty() bool {
	return len(r.Crew) == 0 && len(r.Cast) == 0 && len(r.Equipment) == 0
}

// MaterializeResult reports which shooting days got a new event and which were
// skipped because an event for the (scene, day) pair already existed.
type MaterializeResult struct {
	CreatedEventIDs []string
	SkippedDayIDs   []string
}

package engine

import (
	"context"

	"callsheet/internal/repository"
)

// ConflictRequest is a proposed assignment of resources to a scene on a
// shooting day.
type ConflictRequest struct {
	ProjectID     string
	SceneID       string
	ShootingDayID string

	CastIDs      []string
	CrewIDs      []string
	EquipmentIDs []string
}

// Detector scans a shooting day's events for resources that are already
// committed elsewhere. It is read-only and never mutates anything.
type Detector struct {
	events repository.ScheduleEventRepo
}

// NewDetector creates a Detector over the given schedule event repo.
func NewDetector(events repository.ScheduleEventRepo) *Detector {
	return &Detector{events: events}
}

// Detect reports every candidate resource id that also appears on another
// event of the same day. Events belonging to the request's own scene are
// excluded: a scene is never in conflict with itself. Each id is reported at
// most once regardless of how many events it collides with.
//
// The report is advisory. On a read failure Detect returns a zero report and
// the error; callers applying the fail-open policy treat that as "no conflicts
// found" and log the error instead of blocking the assignment.
func (d *Detector) Detect(ctx context.Context, req ConflictRequest) (ConflictReport, error) {
	events, err := d.events.ListByShootingDay(ctx, req.ProjectID, req.ShootingDayID)
	if err != nil {
		return ConflictReport{}, err
	}

	committedCast := make(map[string]bool)
	committedCrew := make(map[string]bool)
	committedEquipment := make(map[string]bool)
	for _, ev := range events {
		if ev.SceneID != nil && *ev.SceneID == req.SceneID {
			continue
		}
		for _, id := range ev.CastIDs {
			committedCast[id] = true
		}
		for _, id := range ev.CrewIDs {
			committedCrew[id] = true
		}
		for _, id := range ev.EquipmentIDs {
			committedEquipment[id] = true
		}
	}

	return ConflictReport{
		Cast:      intersect(req.CastIDs, committedCast),
		Crew:      intersect(req.CrewIDs, committedCrew),
		Equipment: intersect(req.EquipmentIDs, committedEquipment),
	}, nil
}

// intersect returns the candidate ids present in committed, deduplicated,
// preserving candidate order.
func intersect(candidates []string, committed map[string]bool) []string {
	var out []string
	seen := make(map[string]bool)
	for _, id := range candidates {
		if committed[id] && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Package engine keeps budget line items consistent with the crew, cast and
// equipment records they link to, and detects resource double-bookings on the
// shooting schedule. It is reactive: it never creates or deletes resources,
// scenes or shooting days, only writes derived budget fields and materializes
// schedule events.
package engine

import (
	"strings"

	"callsheet/internal/domain"
)

// Snapshot carries the display and rate fields of a resource at the moment a
// propagation is triggered. Only the fields for the change's kind are read.
type Snapshot struct {
	Name          string
	Role          string
	ActorName     string
	CharacterName string

	DailyRate  *float64
	WeeklyRate *float64
	FlatRate   *float64
}

// SnapshotFromCrew builds a Snapshot from a crew member's current fields.
func SnapshotFromCrew(c *domain.CrewMember) Snapshot {
	return Snapshot{Name: c.Name, Role: c.Role, DailyRate: c.DailyRate}
}

// SnapshotFromCast builds a Snapshot from a cast member's current fields.
func SnapshotFromCast(c *domain.CastMember) Snapshot {
	return Snapshot{ActorName: c.ActorName, CharacterName: c.CharacterName, DailyRate: c.DailyRate}
}

// SnapshotFromEquipment builds a Snapshot from an equipment item's current fields.
func SnapshotFromEquipment(e *domain.Equipment) Snapshot {
	return Snapshot{Name: e.Name, DailyRate: e.DailyRate, WeeklyRate: e.WeeklyRate, FlatRate: e.FlatRate}
}

// ComposeDescription produces the budget item description for a linked
// resource: crew "{name} - {role}", equipment the name alone, cast
// "{actor} as {character}" falling back to whichever half is present.
func ComposeDescription(kind domain.ResourceKind, snap Snapshot) string {
	switch kind {
	case domain.KindCrew:
		if snap.Role == "" {
			return snap.Name
		}
		return snap.Name + " - " + snap.Role
	case domain.KindEquipment:
		return snap.Name
	case domain.KindCast:
		switch {
		case snap.ActorName != "" && snap.CharacterName != "":
			return snap.ActorName + " as " + snap.CharacterName
		case snap.ActorName != "":
			return snap.ActorName
		default:
			return snap.CharacterName
		}
	}
	return ""
}

// RateForUnit selects the resource rate that applies to a budget item. Crew
// and cast carry a single day rate. For equipment the item's own unit string
// decides between the daily and weekly rate by case-insensitive substring
// match; any other unit returns nil, leaving the item's rate untouched.
func RateForUnit(kind domain.ResourceKind, snap Snapshot, unit string) *float64 {
	switch kind {
	case domain.KindCrew, domain.KindCast:
		return snap.DailyRate
	case domain.KindEquipment:
		u := strings.ToLower(unit)
		switch {
		case strings.Contains(u, "day"):
			return snap.DailyRate
		case strings.Contains(u, "week"):
			return snap.WeeklyRate
		}
	}
	return nil
}

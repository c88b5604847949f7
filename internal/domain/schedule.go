package domain

import "time"

// DayContact is a day-level contact on the call sheet (e.g. unit manager).
type DayContact struct {
	Name  string
	Role  string
	Phone string
}

type ShootingDay struct {
	ID        string
	ProjectID string
	Date      time.Time

	BasecampLocationID *string
	ParkingLocationID  *string
	HoldingLocationID  *string

	Contacts []DayContact

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleEvent is one block on a shooting day's strip board. Events created
// from a scene carry their own copies of the scene's resource ids; they do not
// follow later scene edits.
type ScheduleEvent struct {
	ID            string
	ProjectID     string
	ShootingDayID string
	SceneID       *string
	Type          EventType

	Description string
	SceneNumber string

	LocationID   *string
	LocationName string

	CastIDs      []string
	CrewIDs      []string
	EquipmentIDs []string

	DurationMin int
	Notes       string

	// OrderIndex is the event's position within the day, unique per day.
	OrderIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
}

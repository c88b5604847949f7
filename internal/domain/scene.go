package domain

import "time"

type Scene struct {
	ID          string
	ProjectID   string
	SceneNumber string
	Description string

	LocationID   *string
	LocationName string

	// Assigned resources
	CastIDs      []string
	CrewIDs      []string
	EquipmentIDs []string

	DurationMin         int
	SpecialRequirements string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

type CastMember struct {
	ID            string
	ProjectID     string
	ActorName     string
	CharacterName string
	DailyRate     *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

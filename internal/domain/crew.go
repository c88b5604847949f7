package domain

import "time"

type CrewMember struct {
	ID         string
	ProjectID  string
	Name       string
	Role       string
	Department string
	DailyRate  *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

type Equipment struct {
	ID        string
	ProjectID string
	Name      string
	Category  string

	// Rates
	DailyRate  *float64
	WeeklyRate *float64
	FlatRate   *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

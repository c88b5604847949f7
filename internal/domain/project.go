package domain

import "time"

type Project struct {
	ID     string
	Name   string
	Status ProjectStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

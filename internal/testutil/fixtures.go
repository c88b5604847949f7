package testutil

import (
	"time"

	"callsheet/internal/domain"
	"github.com/google/uuid"
)

// Crew options
type CrewOption func(*domain.CrewMember)

func WithCrewRole(role string) CrewOption {
	return func(c *domain.CrewMember) {
		c.Role = role
	}
}

func WithCrewDepartment(dept string) CrewOption {
	return func(c *domain.CrewMember) {
		c.Department = dept
	}
}

func WithCrewDailyRate(rate float64) CrewOption {
	return func(c *domain.CrewMember) {
		c.DailyRate = &rate
	}
}

// Cast options
type CastOption func(*domain.CastMember)

func WithCharacter(name string) CastOption {
	return func(c *domain.CastMember) {
		c.CharacterName = name
	}
}

func WithCastDailyRate(rate float64) CastOption {
	return func(c *domain.CastMember) {
		c.DailyRate = &rate
	}
}

// Equipment options
type EquipmentOption func(*domain.Equipment)

func WithEquipmentCategory(category string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Category = category
	}
}

func WithEquipmentRates(daily, weekly float64) EquipmentOption {
	return func(e *domain.Equipment) {
		e.DailyRate = &daily
		e.WeeklyRate = &weekly
	}
}

func WithEquipmentFlatRate(rate float64) EquipmentOption {
	return func(e *domain.Equipment) {
		e.FlatRate = &rate
	}
}

// BudgetItem options
type BudgetItemOption func(*domain.BudgetItem)

func WithUnit(unit string) BudgetItemOption {
	return func(b *domain.BudgetItem) {
		b.Unit = unit
	}
}

func WithUnitRate(rate float64) BudgetItemOption {
	return func(b *domain.BudgetItem) {
		b.UnitRate = &rate
	}
}

func WithQuantity(qty float64) BudgetItemOption {
	return func(b *domain.BudgetItem) {
		b.Quantity = &qty
	}
}

func WithEstimatedAmount(amount float64) BudgetItemOption {
	return func(b *domain.BudgetItem) {
		b.EstimatedAmount = &amount
	}
}

func WithLink(kind domain.ResourceKind, resourceID string) BudgetItemOption {
	return func(b *domain.BudgetItem) {
		b.SetLink(kind, resourceID)
	}
}

// Scene options
type SceneOption func(*domain.Scene)

func WithSceneCast(ids ...string) SceneOption {
	return func(s *domain.Scene) {
		s.CastIDs = ids
	}
}

func WithSceneCrew(ids ...string) SceneOption {
	return func(s *domain.Scene) {
		s.CrewIDs = ids
	}
}

func WithSceneEquipment(ids ...string) SceneOption {
	return func(s *domain.Scene) {
		s.EquipmentIDs = ids
	}
}

func WithSceneLocation(id, name string) SceneOption {
	return func(s *domain.Scene) {
		s.LocationID = &id
		s.LocationName = name
	}
}

func WithSceneDuration(minutes int) SceneOption {
	return func(s *domain.Scene) {
		s.DurationMin = minutes
	}
}

func WithSpecialRequirements(req string) SceneOption {
	return func(s *domain.Scene) {
		s.SpecialRequirements = req
	}
}

func NewTestProject(name string) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestCrewMember(projectID, name string, opts ...CrewOption) *domain.CrewMember {
	now := time.Now().UTC()
	c := &domain.CrewMember{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestCastMember(projectID, actorName string, opts ...CastOption) *domain.CastMember {
	now := time.Now().UTC()
	c := &domain.CastMember{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		ActorName: actorName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestEquipment(projectID, name string, opts ...EquipmentOption) *domain.Equipment {
	now := time.Now().UTC()
	e := &domain.Equipment{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestBudgetCategory(projectID, name string) *domain.BudgetCategory {
	now := time.Now().UTC()
	return &domain.BudgetCategory{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestBudgetItem(projectID, categoryID, description string, opts ...BudgetItemOption) *domain.BudgetItem {
	now := time.Now().UTC()
	b := &domain.BudgetItem{
		ID:          uuid.New().String(),
		CategoryID:  categoryID,
		ProjectID:   projectID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func NewTestScene(projectID, sceneNumber string, opts ...SceneOption) *domain.Scene {
	now := time.Now().UTC()
	s := &domain.Scene{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		SceneNumber: sceneNumber,
		Description: "Scene " + sceneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestShootingDay(projectID string, date time.Time) *domain.ShootingDay {
	now := time.Now().UTC()
	return &domain.ShootingDay{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

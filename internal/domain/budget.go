package domain

import "time"

type BudgetCategory struct {
	ID         string
	ProjectID  string
	Name       string
	OrderIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BudgetItem is a line item inside a category. The description, unit rate and
// estimated amount are cached copies of the linked resource's fields as of the
// last propagation; they are not live references.
type BudgetItem struct {
	ID          string
	CategoryID  string
	ProjectID   string
	Description string
	Unit        string
	UnitRate    *float64
	Quantity    *float64

	EstimatedAmount *float64
	ActualAmount    *float64

	// At most one of these is set; a budget item links to zero or one resource.
	LinkedCrewMemberID *string
	LinkedCastMemberID *string
	LinkedEquipmentID  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LinkedResource returns the kind and id of the linked resource, if any.
func (b *BudgetItem) LinkedResource() (ResourceKind, string, bool) {
	switch {
	case b.LinkedCrewMemberID != nil:
		return KindCrew, *b.LinkedCrewMemberID, true
	case b.LinkedCastMemberID != nil:
		return KindCast, *b.LinkedCastMemberID, true
	case b.LinkedEquipmentID != nil:
		return KindEquipment, *b.LinkedEquipmentID, true
	}
	return "", "", false
}

// SetLink points the item at a single resource, clearing any previous link.
func (b *BudgetItem) SetLink(kind ResourceKind, resourceID string) {
	b.LinkedCrewMemberID = nil
	b.LinkedCastMemberID = nil
	b.LinkedEquipmentID = nil
	switch kind {
	case KindCrew:
		b.LinkedCrewMemberID = &resourceID
	case KindCast:
		b.LinkedCastMemberID = &resourceID
	case KindEquipment:
		b.LinkedEquipmentID = &resourceID
	}
}

// ClearLink removes any resource link.
func (b *BudgetItem) ClearLink() {
	b.LinkedCrewMemberID = nil
	b.LinkedCastMemberID = nil
	b.LinkedEquipmentID = nil
}

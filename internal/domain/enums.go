package domain

// ResourceKind identifies which resource collection a linked id points into.
type ResourceKind string

const (
	KindCrew      ResourceKind = "crew"
	KindCast      ResourceKind = "cast"
	KindEquipment ResourceKind = "equipment"
)

// ValidResourceKinds is the canonical set of accepted resource kind strings.
var ValidResourceKinds = map[string]bool{
	"crew": true, "cast": true, "equipment": true,
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectWrapped  ProjectStatus = "wrapped"
	ProjectArchived ProjectStatus = "archived"
)

type EventType string

const (
	EventScene       EventType = "scene"
	EventCompanyMove EventType = "company_move"
	EventMeal        EventType = "meal"
	EventCustom      EventType = "custom"
)

// Package cli wires the cobra command tree over the service layer.
package cli

import (
	"callsheet/internal/service"
)

// App bundles the services the commands dispatch to.
type App struct {
	Projects  service.ProjectService
	Crew      service.CrewService
	Cast      service.CastService
	Equipment service.EquipmentService
	Budget    service.BudgetService
	Scenes    service.SceneService
	Schedule  service.ScheduleService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the callsheet command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "callsheet",
		Short:         "Film production management: crew, cast, budget, schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newCrewCmd(app),
		newCastCmd(app),
		newEquipmentCmd(app),
		newBudgetCmd(app),
		newSceneCmd(app),
		newDayCmd(app),
		newScheduleCmd(app),
	)
	return root
}

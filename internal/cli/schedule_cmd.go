package cli

import (
	"fmt"

	"callsheet/internal/cli/formatter"
	"callsheet/internal/engine"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "View the shooting schedule",
	}
	cmd.AddCommand(
		newScheduleShowCmd(app),
		newScheduleConflictsCmd(app),
	)
	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <day-id>",
		Short: "Show a shooting day's events in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.Schedule.GetDay(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			events, err := app.Schedule.ListDayEvents(cmd.Context(), day.ProjectID, day.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayEvents(day, events))
			return nil
		},
	}
}

// newScheduleConflictsCmd runs an ad hoc conflict check for a scene against a
// day, without assigning anything.
func newScheduleConflictsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts <scene-id> <day-id>",
		Short: "Check a scene's resources against a day for double-bookings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := app.Scenes.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			report := app.Schedule.CheckConflicts(cmd.Context(), engine.ConflictRequest{
				ProjectID:     scene.ProjectID,
				SceneID:       scene.ID,
				ShootingDayID: args[1],
				CastIDs:       scene.CastIDs,
				CrewIDs:       scene.CrewIDs,
				EquipmentIDs:  scene.EquipmentIDs,
			})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflictReport(report))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"callsheet/internal/cli/formatter"
	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"github.com/spf13/cobra"
)

func newSceneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Manage scenes",
	}
	cmd.AddCommand(
		newSceneAddCmd(app),
		newSceneListCmd(app),
		newSceneAssignCmd(app),
		newSceneRmCmd(app),
	)
	return cmd
}

func newSceneAddCmd(app *App) *cobra.Command {
	var project, number, location, requirements string
	var duration int
	var castIDs, crewIDs, equipmentIDs []string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			s := &domain.Scene{
				ProjectID:           projectID,
				SceneNumber:         number,
				Description:         args[0],
				LocationName:        location,
				CastIDs:             castIDs,
				CrewIDs:             crewIDs,
				EquipmentIDs:        equipmentIDs,
				DurationMin:         duration,
				SpecialRequirements: requirements,
			}
			if err := app.Scenes.Create(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created scene %s (%s)\n", s.SceneNumber, s.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	cmd.Flags().StringVar(&number, "number", "", "scene number, e.g. 12A")
	cmd.Flags().StringVar(&location, "location", "", "location name")
	cmd.Flags().IntVar(&duration, "duration", 0, "estimated duration in minutes")
	cmd.Flags().StringVar(&requirements, "requirements", "", "special requirements")
	cmd.Flags().StringSliceVar(&castIDs, "cast", nil, "cast member ids")
	cmd.Flags().StringSliceVar(&crewIDs, "crew", nil, "crew member ids")
	cmd.Flags().StringSliceVar(&equipmentIDs, "equipment", nil, "equipment ids")
	return cmd
}

func newSceneListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			scenes, err := app.Scenes.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(scenes))
			for _, s := range scenes {
				rows = append(rows, []string{
					s.ID,
					s.SceneNumber,
					s.Description,
					s.LocationName,
					fmt.Sprintf("%dm", s.DurationMin),
					fmt.Sprintf("%d", len(s.CastIDs)),
					fmt.Sprintf("%d", len(s.CrewIDs)),
					fmt.Sprintf("%d", len(s.EquipmentIDs)),
				})
			}
			headers := []string{"ID", "#", "DESCRIPTION", "LOCATION", "DUR", "CAST", "CREW", "EQUIP"}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	return cmd
}

// newSceneAssignCmd assigns a scene to one or more shooting days. Each day is
// checked for double-booked resources first; conflicts are printed but never
// block the assignment.
func newSceneAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <scene-id> <day-id>...",
		Short: "Assign a scene to shooting days",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sceneID, dayIDs := args[0], args[1:]

			scene, err := app.Scenes.GetByID(cmd.Context(), sceneID)
			if err != nil {
				return err
			}

			for _, dayID := range dayIDs {
				report := app.Schedule.CheckConflicts(cmd.Context(), engine.ConflictRequest{
					ProjectID:     scene.ProjectID,
					SceneID:       scene.ID,
					ShootingDayID: dayID,
					CastIDs:       scene.CastIDs,
					CrewIDs:       scene.CrewIDs,
					EquipmentIDs:  scene.EquipmentIDs,
				})
				if !report.Empty() {
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflictReport(report))
				}
			}

			result, err := app.Scenes.AssignShootingDays(cmd.Context(), sceneID, dayIDs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled scene %s: %d event(s) created, %d day(s) already covered\n",
				scene.SceneNumber, len(result.CreatedEventIDs), len(result.SkippedDayIDs))
			return nil
		},
	}
}

func newSceneRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <scene-id>",
		Short: "Delete a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Scenes.Delete(cmd.Context(), args[0])
		},
	}
}

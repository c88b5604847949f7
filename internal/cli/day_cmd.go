package cli

import (
	"fmt"
	"time"

	"callsheet/internal/cli/formatter"
	"callsheet/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage shooting days",
	}
	cmd.AddCommand(
		newDayAddCmd(app),
		newDayListCmd(app),
		newDayRmCmd(app),
	)
	return cmd
}

func newDayAddCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "add <date>",
		Short: "Add a shooting day (date as YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			date, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
			}
			d := &domain.ShootingDay{ProjectID: projectID, Date: date}
			if err := app.Schedule.CreateDay(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created shooting day %s (%s)\n", args[0], d.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	return cmd
}

func newDayListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shooting days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			days, err := app.Schedule.ListDays(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(days))
			for _, d := range days {
				rows = append(rows, []string{
					d.ID,
					d.Date.Format("2006-01-02"),
					fmt.Sprintf("%d", len(d.Contacts)),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "DATE", "CONTACTS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	return cmd
}

func newDayRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <day-id>",
		Short: "Delete a shooting day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Schedule.DeleteDay(cmd.Context(), args[0])
		},
	}
}

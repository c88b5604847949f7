package cli

import (
	"fmt"

	"callsheet/internal/cli/formatter"
	"callsheet/internal/domain"
	"github.com/spf13/cobra"
)

func newEquipmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"equip"},
		Short:   "Manage equipment",
	}
	cmd.AddCommand(newEquipmentAddCmd(app), newEquipmentListCmd(app), newEquipmentUpdateCmd(app), newEquipmentRemoveCmd(app))
	return cmd
}

func newEquipmentAddCmd(app *App) *cobra.Command {
	var project, category string
	var daily, weekly, flat float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an equipment item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			e := &domain.Equipment{
				ProjectID: projectID,
				Name:      args[0],
				Category:  category,
			}
			if cmd.Flags().Changed("daily") {
				r := daily
				e.DailyRate = &r
			}
			if cmd.Flags().Changed("weekly") {
				r := weekly
				e.WeeklyRate = &r
			}
			if cmd.Flags().Changed("flat") {
				r := flat
				e.FlatRate = &r
			}
			if err := app.Equipment.Create(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added equipment %s (%s)\n", e.Name, e.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	cmd.Flags().StringVar(&category, "category", "", "equipment category")
	cmd.Flags().Float64Var(&daily, "daily", 0, "daily rate")
	cmd.Flags().Float64Var(&weekly, "weekly", 0, "weekly rate")
	cmd.Flags().Float64Var(&flat, "flat", 0, "flat rate")
	return cmd
}

func newEquipmentListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List equipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			items, err := app.Equipment.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(items))
			for _, e := range items {
				rows = append(rows, []string{
					e.ID, e.Name, e.Category,
					formatter.FormatMoney(e.DailyRate),
					formatter.FormatMoney(e.WeeklyRate),
					formatter.FormatMoney(e.FlatRate),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "NAME", "CATEGORY", "DAILY", "WEEKLY", "FLAT"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	return cmd
}

func newEquipmentUpdateCmd(app *App) *cobra.Command {
	var name, category string
	var daily, weekly, flat float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an equipment item (linked budget items resync automatically)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Equipment.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				e.Name = name
			}
			if cmd.Flags().Changed("category") {
				e.Category = category
			}
			if cmd.Flags().Changed("daily") {
				r := daily
				e.DailyRate = &r
			}
			if cmd.Flags().Changed("weekly") {
				r := weekly
				e.WeeklyRate = &r
			}
			if cmd.Flags().Changed("flat") {
				r := flat
				e.FlatRate = &r
			}

			result, err := app.Equipment.Update(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated equipment %s\n", e.Name)
			printPropagation(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().Float64Var(&daily, "daily", 0, "new daily rate")
	cmd.Flags().Float64Var(&weekly, "weekly", 0, "new weekly rate")
	cmd.Flags().Float64Var(&flat, "flat", 0, "new flat rate")
	return cmd
}

func newEquipmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an equipment item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Equipment.Delete(cmd.Context(), args[0])
		},
	}
}

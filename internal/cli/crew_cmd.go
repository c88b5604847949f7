package cli

import (
	"fmt"
	"strconv"

	"callsheet/internal/cli/formatter"
	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newCrewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Manage crew members",
	}
	cmd.AddCommand(newCrewAddCmd(app), newCrewListCmd(app), newCrewUpdateCmd(app), newCrewRemoveCmd(app))
	return cmd
}

func newCrewAddCmd(app *App) *cobra.Command {
	var project, role, department string
	var rate float64

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a crew member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}
			var rateStr string
			if cmd.Flags().Changed("rate") {
				rateStr = strconv.FormatFloat(rate, 'f', -1, 64)
			}

			if name == "" && app.interactive() {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().Title("Name").Value(&name),
					huh.NewInput().Title("Role").Placeholder("Gaffer").Value(&role),
					huh.NewInput().Title("Department").Placeholder("Electric").Value(&department),
					huh.NewInput().Title("Day rate (blank for none)").Value(&rateStr).Validate(validateOptionalFloat),
				)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if name == "" {
				return fmt.Errorf("crew member name is required")
			}

			c := &domain.CrewMember{
				ProjectID:  projectID,
				Name:       name,
				Role:       role,
				Department: department,
			}
			if rateStr != "" {
				r, err := strconv.ParseFloat(rateStr, 64)
				if err != nil {
					return fmt.Errorf("invalid day rate %q", rateStr)
				}
				c.DailyRate = &r
			}

			if err := app.Crew.Create(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added crew member %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	cmd.Flags().StringVar(&role, "role", "", "crew role")
	cmd.Flags().StringVar(&department, "department", "", "department")
	cmd.Flags().Float64Var(&rate, "rate", 0, "day rate")
	return cmd
}

func newCrewListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List crew members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			members, err := app.Crew.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(members))
			for _, c := range members {
				rows = append(rows, []string{c.ID, c.Name, c.Role, c.Department, formatter.FormatMoney(c.DailyRate)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "NAME", "ROLE", "DEPT", "DAY RATE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	return cmd
}

func newCrewUpdateCmd(app *App) *cobra.Command {
	var name, role, department string
	var rate float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a crew member (linked budget items resync automatically)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Crew.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("role") {
				c.Role = role
			}
			if cmd.Flags().Changed("department") {
				c.Department = department
			}
			if cmd.Flags().Changed("rate") {
				r := rate
				c.DailyRate = &r
			}

			result, err := app.Crew.Update(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated crew member %s\n", c.Name)
			printPropagation(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&role, "role", "", "new role")
	cmd.Flags().StringVar(&department, "department", "", "new department")
	cmd.Flags().Float64Var(&rate, "rate", 0, "new day rate")
	return cmd
}

func newCrewRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a crew member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Crew.Delete(cmd.Context(), args[0])
		},
	}
}

// printPropagation reports the budget resync outcome after a resource edit.
// The edit itself succeeded either way.
func printPropagation(cmd *cobra.Command, result engine.PropagationResult) {
	switch result.Status {
	case engine.StatusPropagated:
		fmt.Fprintf(cmd.OutOrStdout(), "Resynced %d linked budget item(s)\n", result.Updated)
	case engine.StatusFailed:
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: budget resync failed: %v\n", result.Err)
	}
}

// validateOptionalFloat accepts an empty string or a parseable number.
func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

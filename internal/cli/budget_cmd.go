package cli

import (
	"fmt"

	"callsheet/internal/cli/formatter"
	"callsheet/internal/domain"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the production budget",
	}
	cmd.AddCommand(
		newBudgetCategoryCmd(app),
		newBudgetItemAddCmd(app),
		newBudgetListCmd(app),
		newBudgetLinkCmd(app),
		newBudgetUnlinkCmd(app),
	)
	return cmd
}

func newBudgetCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage budget categories",
	}

	var project string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a budget category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			c := &domain.BudgetCategory{ProjectID: projectID, Name: args[0]}
			if err := app.Budget.CreateCategory(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}
	add.Flags().StringVarP(&project, "project", "p", "", "project id or name")

	var listProject string
	list := &cobra.Command{
		Use:   "list",
		Short: "List budget categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, listProject)
			if err != nil {
				return err
			}
			categories, err := app.Budget.ListCategories(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{c.ID, c.Name})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "NAME"}, rows))
			return nil
		},
	}
	list.Flags().StringVarP(&listProject, "project", "p", "", "project id or name")

	cmd.AddCommand(add, list)
	return cmd
}

func newBudgetItemAddCmd(app *App) *cobra.Command {
	var category, unit string
	var rate, quantity float64

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a budget line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.BudgetItem{
				CategoryID:  category,
				Description: args[0],
				Unit:        unit,
			}
			if cmd.Flags().Changed("rate") {
				r := rate
				b.UnitRate = &r
			}
			if cmd.Flags().Changed("quantity") {
				q := quantity
				b.Quantity = &q
			}
			if err := app.Budget.CreateItem(cmd.Context(), b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created budget item %s (%s)\n", b.Description, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "budget category id")
	cmd.Flags().StringVar(&unit, "unit", "", `billing unit, e.g. "days" or "weeks"`)
	cmd.Flags().Float64Var(&rate, "rate", 0, "unit rate")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "quantity")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newBudgetListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budget items for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			items, err := app.Budget.ListProjectItems(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBudgetItems(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	return cmd
}

func newBudgetLinkCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "link <item-id> <resource-id>",
		Short: "Link a budget item to a crew, cast or equipment record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidResourceKinds[kind] {
				return fmt.Errorf("invalid --kind %q (crew, cast or equipment)", kind)
			}
			if err := app.Budget.LinkItem(cmd.Context(), args[0], domain.ResourceKind(kind), args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked budget item %s to %s %s\n", args[0], kind, args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "resource kind: crew, cast or equipment")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func newBudgetUnlinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <item-id>",
		Short: "Remove a budget item's resource link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Budget.UnlinkItem(cmd.Context(), args[0])
		},
	}
}

package cli

import (
	"fmt"

	"callsheet/internal/cli/formatter"
	"callsheet/internal/domain"
	"github.com/spf13/cobra"
)

func newCastCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Manage cast members",
	}
	cmd.AddCommand(newCastAddCmd(app), newCastListCmd(app), newCastUpdateCmd(app), newCastRemoveCmd(app))
	return cmd
}

func newCastAddCmd(app *App) *cobra.Command {
	var project, character string
	var rate float64

	cmd := &cobra.Command{
		Use:   "add <actor>",
		Short: "Add a cast member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			c := &domain.CastMember{
				ProjectID:     projectID,
				ActorName:     args[0],
				CharacterName: character,
			}
			if cmd.Flags().Changed("rate") {
				r := rate
				c.DailyRate = &r
			}
			if err := app.Cast.Create(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added cast member %s (%s)\n", c.ActorName, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	cmd.Flags().StringVar(&character, "character", "", "character name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "day rate")
	return cmd
}

func newCastListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cast members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, project)
			if err != nil {
				return err
			}
			members, err := app.Cast.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(members))
			for _, c := range members {
				rows = append(rows, []string{c.ID, c.ActorName, c.CharacterName, formatter.FormatMoney(c.DailyRate)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "ACTOR", "CHARACTER", "DAY RATE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or name")
	return cmd
}

func newCastUpdateCmd(app *App) *cobra.Command {
	var actor, character string
	var rate float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a cast member (linked budget items resync automatically)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Cast.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("actor") {
				c.ActorName = actor
			}
			if cmd.Flags().Changed("character") {
				c.CharacterName = character
			}
			if cmd.Flags().Changed("rate") {
				r := rate
				c.DailyRate = &r
			}

			result, err := app.Cast.Update(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated cast member %s\n", c.ActorName)
			printPropagation(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "new actor name")
	cmd.Flags().StringVar(&character, "character", "", "new character name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "new day rate")
	return cmd
}

func newCastRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a cast member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Cast.Delete(cmd.Context(), args[0])
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmarchuk/tasksphere/internal/cli/formatter"
	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/service"
	"github.com/spf13/cobra"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberWellnessCmd(app),
		newMemberToggleCmd(app),
		newMemberWorkloadCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var email, role, color string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.CreateMemberInput{
				Name:        args[0],
				Email:       email,
				AvatarColor: color,
			}

			if role != "" {
				r, err := domain.ParseRole(role)
				if err != nil {
					return err
				}
				in.Role = r
			}

			m, err := app.Team.Create(context.Background(), in)
			if err != nil {
				return err
			}

			fmt.Printf("Added member %s (%s)\n", m.Name, m.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "role", "", "Role (owner, admin, member, viewer)")
	cmd.Flags().StringVar(&color, "color", "", "Avatar color (hex)")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members := app.Team.List()
			if len(members) == 0 {
				fmt.Println("No team members found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMemberList(members))
			return nil
		},
	}
}

func newMemberWellnessCmd(app *App) *cobra.Command {
	var steps int
	var sleep float64

	cmd := &cobra.Command{
		Use:   "wellness ID",
		Short: "Show or record a member's wellness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMemberID(app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("steps") || cmd.Flags().Changed("sleep") {
				if err := app.Team.UpdateWellness(ctx, id, steps, sleep); err != nil {
					return err
				}
			}

			m, err := app.Team.Get(id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatWellnessDetail(m))
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "Steps today")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "Sleep hours last night")

	return cmd
}

func newMemberToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Toggle a member's active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveMemberID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.ToggleActive(context.Background(), id); err != nil {
				return err
			}
			m, err := app.Team.Get(id)
			if err != nil {
				return err
			}
			state := "inactive"
			if m.IsActive {
				state = "active"
			}
			fmt.Printf("%s is now %s\n", m.Name, state)
			return nil
		},
	}
}

func newMemberWorkloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "workload",
		Short: "Rank members by open assigned tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			loads := app.Team.MembersByWorkload()
			if len(loads) == 0 {
				fmt.Println("No team members found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatWorkloads(loads))
			return nil
		},
	}
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a member and unassign them everywhere",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveMemberID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed member %s\n", id[:8])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarchuk/tasksphere/internal/cli/formatter"
	"github.com/dmarchuk/tasksphere/internal/service"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectProgressCmd(app),
		newProjectTimelineCmd(app),
		newProjectMilestoneCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var desc, start, end, color string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.CreateProjectInput{
				Name:        args[0],
				Description: desc,
				Color:       color,
			}

			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				in.StartDate = startDate
			}
			if end != "" {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				in.EndDate = &endDate
			}

			p, err := app.Projects.Create(context.Background(), in)
			if err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", p.Name, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Project description")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&color, "color", "", "Accent color (hex)")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Projects.List()
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress ID",
		Short: "Recompute a project's progress from its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.RecomputeProgress(ctx, id); err != nil {
				return err
			}
			p, err := app.Projects.Get(id)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", p.Name, formatter.RenderProgress(p.Progress, 20))
			return nil
		},
	}
}

func newProjectTimelineCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show all projects on a shared timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Projects.Timeline()
			fmt.Printf("%s\n", formatter.FormatTimeline(entries, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 50, "Timeline bar width in characters")

	return cmd
}

func newProjectMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage project milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneToggleCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "add PROJECT_ID TITLE",
		Short: "Add a milestone to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, args[0])
			if err != nil {
				return err
			}
			dueDate, err := time.Parse("2006-01-02", due)
			if err != nil {
				return fmt.Errorf("invalid due date %q: %w", due, err)
			}
			m, err := app.Projects.AddMilestone(context.Background(), projectID, args[1], dueDate)
			if err != nil {
				return err
			}
			fmt.Printf("Added milestone %s (%s)\n", m.Title, m.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List a project's milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatMilestones(p, time.Now()))
			return nil
		},
	}
}

func newMilestoneToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle PROJECT_ID MILESTONE_ID",
		Short: "Toggle a milestone's completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.ToggleMilestone(context.Background(), projectID, args[1]); err != nil {
				return err
			}
			fmt.Println("Toggled milestone.")
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed project %s and its tasks\n", id[:8])
			return nil
		},
	}
}

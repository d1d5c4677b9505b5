package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarchuk/tasksphere/internal/cli/formatter"
	"github.com/dmarchuk/tasksphere/internal/domain"
	"github.com/dmarchuk/tasksphere/internal/service"
	"github.com/dmarchuk/tasksphere/internal/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// priorityFlag is a pflag.Value that validates priority names on Set, so bad
// input fails at flag-parse time rather than inside RunE.
type priorityFlag struct {
	value domain.TaskPriority
}

var _ pflag.Value = (*priorityFlag)(nil)

func (f *priorityFlag) String() string { return f.value.Title() }
func (f *priorityFlag) Type() string   { return "priority" }

func (f *priorityFlag) Set(s string) error {
	p, err := domain.ParsePriority(s)
	if err != nil {
		return err
	}
	f.value = p
	return nil
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskStatusCmd(app),
		newTaskDoneCmd(app),
		newTaskAssignCmd(app),
		newTaskRemoveCmd(app),
		newTaskHeatmapCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var desc, due, projectID string
	var tags []string
	var priority priorityFlag

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.CreateTaskInput{
				Title:       args[0],
				Description: desc,
				Priority:    priority.value,
				Tags:        tags,
			}

			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				in.DueDate = &dueDate
			}
			if projectID != "" {
				id, err := resolveProjectID(app, projectID)
				if err != nil {
					return err
				}
				in.ProjectID = id
			}

			t, err := app.Tasks.Create(context.Background(), in)
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", t.Title, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Task description")
	cmd.Flags().Var(&priority, "priority", "Priority (low, medium, high, urgent)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID or prefix")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (repeatable)")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var overdue, urgent bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			var tasks []domain.Task
			switch {
			case overdue:
				tasks = app.Tasks.Overdue(now)
			case urgent:
				tasks = app.Tasks.SortedByUrgency(now)
			default:
				tasks = app.Tasks.List()
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(tasks, now))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overdue, "overdue", false, "Only overdue tasks")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "Sort by urgency, most urgent first")

	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseTaskStatus(args[1])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetStatus(context.Background(), id, status); err != nil {
				return err
			}
			fmt.Printf("Task %s is now %s\n", id[:8], status)
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetStatus(context.Background(), id, domain.TaskCompleted); err != nil {
				return err
			}
			fmt.Printf("Completed task %s\n", id[:8])
			return nil
		},
	}
}

func newTaskAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign TASK_ID MEMBER_ID...",
		Short: "Replace a task's assignees",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			memberIDs := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				memberID, err := resolveMemberID(app, arg)
				if err != nil {
					return err
				}
				memberIDs = append(memberIDs, memberID)
			}
			if err := app.Tasks.Assign(context.Background(), id, memberIDs); err != nil {
				return err
			}
			fmt.Printf("Assigned %d member(s) to task %s\n", len(memberIDs), id[:8])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", id[:8])
			return nil
		},
	}
}

func newTaskHeatmapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap",
		Short: "Show open tasks ranked by urgency",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := stats.Heatmap(app.Tasks.List(), time.Now())
			fmt.Printf("%s\n", formatter.FormatHeatmap(entries))
			return nil
		},
	}
}

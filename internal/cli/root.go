package cli

import (
	"github.com/dmarchuk/tasksphere/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Projects service.ProjectService
	Team     service.TeamService

	// IsInteractive reports whether a human terminal is attached. When it
	// is, running with no subcommand shows the overview instead of help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tasksphere" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasksphere",
		Short: "Task, project, and team tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return newStatsCmd(app).RunE(cmd, args)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTaskCmd(app),
		newProjectCmd(app),
		newMemberCmd(app),
		newStatsCmd(app),
	)

	return root
}

package cli

import (
	"fmt"

	"github.com/dmarchuk/tasksphere/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the task, project, and team overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := formatter.OverviewData{
				Tasks:    app.Tasks.List(),
				Projects: app.Projects.List(),
				Members:  app.Team.List(),
			}
			fmt.Printf("%s\n", formatter.FormatOverview(data))
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strings"
)

// resolveID matches input against a list of full IDs: exact match first,
// then unique prefix. Ambiguous prefixes and misses are errors.
func resolveID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveTaskID(app *App, input string) (string, error) {
	tasks := app.Tasks.List()
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return resolveID("task", input, ids)
}

func resolveProjectID(app *App, input string) (string, error) {
	projects := app.Projects.List()
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return resolveID("project", input, ids)
}

func resolveMemberID(app *App, input string) (string, error) {
	members := app.Team.List()
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return resolveID("member", input, ids)
}

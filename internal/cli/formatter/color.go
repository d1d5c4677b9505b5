package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmarchuk/tasksphere/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// PriorityStyle maps a task priority onto the palette, coolest to hottest.
func PriorityStyle(p domain.TaskPriority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed
	case domain.PriorityHigh:
		return StyleYellow
	case domain.PriorityMedium:
		return StyleBlue
	default:
		return StyleDim
	}
}

// UrgencyStyle colors a [0,1] urgency score.
func UrgencyStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.75:
		return StyleRed
	case score >= 0.5:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// WellnessStyle maps a wellness status onto the palette.
func WellnessStyle(status domain.WellnessStatus) lipgloss.Style {
	switch status {
	case domain.WellnessExcellent:
		return StyleGreen
	case domain.WellnessGood:
		return StyleBlue
	case domain.WellnessFair:
		return StyleYellow
	default:
		return StyleRed
	}
}

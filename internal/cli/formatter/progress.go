package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored by percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("%s %s", style.Render(bar), Dim(fmt.Sprintf("%3.0f%%", pct*100)))
}

// RenderSpan renders one row of a shared timeline: a bar of the given width
// starting at the given position, both fractions of the full span.
func RenderSpan(position, width float64, totalWidth int) string {
	if totalWidth < 4 {
		totalWidth = 4
	}
	start := int(position * float64(totalWidth))
	length := int(width * float64(totalWidth))
	if length < 1 {
		length = 1
	}
	if start+length > totalWidth {
		length = totalWidth - start
	}
	if length < 1 {
		start = totalWidth - 1
		length = 1
	}

	lead := strings.Repeat(" ", start)
	bar := strings.Repeat(filledBlock, length)
	tail := strings.Repeat("·", totalWidth-start-length)
	return lead + StyleBlue.Render(bar) + StyleDim.Render(tail)
}

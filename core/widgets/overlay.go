package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup in a rounded card centered over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := splitToLines(base, height)
	for i := range canvas {
		canvas[i] = padRight(canvas[i], width)
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#89b4fa")).
		Padding(1, 2).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, line := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(line))
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	for i, line := range cardLines {
		row := y + i
		if row >= len(canvas) {
			break
		}
		left := padRight(ansi.Truncate(canvas[row], x, ""), x)
		mid := padRight(line, cardWidth)
		right := dropColumns(canvas[row], x+cardWidth)
		canvas[row] = ansi.Truncate(left+mid+right, width, "")
	}
	return strings.Join(canvas, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

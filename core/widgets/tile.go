package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TileHeight is the fixed rendered height of a Tile: two border rows and
// three content rows.
const TileHeight = 5

// Tile is a bordered menu card. Badge sits in the top border; the border and
// title take the accent color.
type Tile struct {
	Badge    string
	Title    string
	Subtitle string
	Accent   lipgloss.Color
	Selected bool
}

func (t Tile) Render(width, _ int) string {
	if width < 6 {
		width = 6
	}
	border := lipgloss.Color("#6c7086")
	if t.Selected && t.Accent != "" {
		border = t.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	badge := strings.TrimSpace(t.Badge)
	if t.Selected {
		badge = "▶ " + badge
	}
	badgeText := ""
	if badge != "" {
		badgeText = " " + ansi.Truncate(badge, max(1, innerWidth-3), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(badgeText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	h := "─"
	topLine := borderStyle.Render("╭"+strings.Repeat(h, leftDash)) +
		titleStyle.Render(badgeText) +
		borderStyle.Render(strings.Repeat(h, rightDash)+"╮")
	bottom := borderStyle.Render("╰" + strings.Repeat(h, innerWidth) + "╯")

	hint := ""
	if t.Selected {
		hint = "enter to open"
	}
	body := []string{
		titleStyle.Render(ansi.Truncate(t.Title, contentWidth, "…")),
		subStyle.Render(ansi.Truncate(t.Subtitle, contentWidth, "…")),
		hintStyle.Render(hint),
	}
	v := borderStyle.Render("│")
	rows := make([]string, 0, TileHeight)
	rows = append(rows, topLine)
	for _, line := range body {
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

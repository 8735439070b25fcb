package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter shows the key hints of the active scope. Inside a chapter the
// hints follow the chapter badge in its accent color; while searching they
// follow the live match count.
func RenderFooter(m Model) string {
	bg := colorMantle
	width := max(1, m.width)

	lead := ""
	switch scope := m.ActiveScope(); scope {
	case ScopeChapter:
		if d, ok := m.registry.Lookup(m.selected); ok {
			lead = lipgloss.NewStyle().Foreground(accentColor(d.AccentColor)).Background(bg).Bold(true).
				Render(fmt.Sprintf("ch%d", d.ID))
		}
	case ScopeSearch:
		lead = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).
			Render(fmt.Sprintf("%d/%d", len(m.tiles()), len(m.registry.VisibleDescriptors(m.visible))))
	}
	if lead != "" {
		lead += lipgloss.NewStyle().Background(bg).Render("  ")
	}

	h := footerHelp(bg)
	h.Width = max(1, width-2-ansi.StringWidth(lead))
	line := h.ShortHelpView(m.keys.HelpBindings(m.ActiveScope()))
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, width, lead+line, bg)
}

func footerHelp(bg lipgloss.TerminalColor) help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Background(bg)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	return h
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Background(bg).Width(width).MaxWidth(width).Render(line)
}

package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/plslides/core/widgets"
)

const appName = "Programming Languages"

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	frame := m.Frame()
	header := m.renderHeader(frame)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.bodyHeight()

	var body string
	switch frame.Kind {
	case FrameChapter:
		body = frame.Unit.View(max(1, m.width), bodyHeight)
	default:
		body = m.renderMenu(frame.Tiles, bodyHeight)
	}
	if m.help && bodyHeight > 0 {
		body = widgets.RenderPopup(body, m.renderHelp(), max(1, m.width), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	parts := []string{header, status}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	view := fitHeight(strings.Join(parts, "\n"), max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderHeader(frame Frame) string {
	left := headerAppStyle.Render(appName)
	var right string
	if frame.Kind == FrameChapter {
		d := frame.Chapter
		accent := lipgloss.NewStyle().Foreground(accentColor(d.AccentColor)).Background(colorMantle).Bold(true)
		right = accent.Render(fmt.Sprintf("Chapter %d", d.ID)) +
			headerSepStyle.Render(" │ ") +
			accent.Render(d.Title)
		if d.Subtitle != "" {
			right += headerSepStyle.Render(" · " + d.Subtitle)
		}
	} else {
		right = headerSepStyle.Render(fmt.Sprintf("%d chapters", len(frame.Tiles)))
	}
	leftW := ansi.StringWidth(left)
	right = ansi.Truncate(right, max(1, m.width-leftW-1), "")
	rightW := ansi.StringWidth(right)
	gap := max(1, m.width-leftW-rightW)
	return renderBar(headerBarStyle, max(1, m.width), left+headerBarStyle.Render(strings.Repeat(" ", gap))+right, colorMantle)
}

func (m Model) renderHelp() string {
	scope := ScopeMenu
	if m.selected != None {
		scope = ScopeChapter
	}
	bindings := m.keys.BindingsForScope(scope)
	lines := make([]string, 0, len(bindings)+2)
	lines = append(lines, keyStyle.Render("Keys"), "")
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		lines = append(lines, keyStyle.Render(fmt.Sprintf("%-14s", strings.Join(b.Keys, "/")))+" "+helpDescStyle.Render(b.Description))
	}
	if scope == ScopeMenu {
		lines = append(lines, keyStyle.Render(fmt.Sprintf("%-14s", "1-9"))+" "+helpDescStyle.Render("open nth chapter"))
	}
	return strings.Join(lines, "\n")
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

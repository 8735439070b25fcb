package slides

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/plslides/core"
)

const sidePad = 2

var (
	slideTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	counterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	progressOnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	progressOff     = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
	placeholderText = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Italic(true)
)

// Unit steps through one deck. Slide index stays within the deck; an empty
// deck renders a placeholder.
type Unit struct {
	deck  Deck
	index int
	back  tea.Cmd
	keys  *core.KeyRegistry
	style string
	log   *zap.Logger

	viewport      viewport.Model
	width         int
	height        int
	rendered      int
	renderer      *glamour.TermRenderer
	rendererWidth int
}

func newUnit(d Deck, back tea.Cmd, keys *core.KeyRegistry, style string, log *zap.Logger) *Unit {
	return &Unit{
		deck:     d,
		back:     back,
		keys:     keys,
		style:    style,
		log:      log,
		viewport: viewport.New(0, 0),
		rendered: -1,
	}
}

func (u *Unit) Index() int {
	return u.index
}

func (u *Unit) Deck() Deck {
	return u.deck
}

func (u *Unit) Update(msg tea.Msg) (core.Unit, tea.Cmd) {
	switch msg := msg.(type) {
	case ReloadedMsg:
		if msg.Deck.Name == u.deck.Name {
			u.deck = msg.Deck
			u.goTo(u.index)
			u.rendered = -1
		}
	case tea.KeyMsg:
		scope := core.ScopeChapter
		switch {
		case u.keys.IsAction(msg, "back", scope):
			return u, u.back
		case u.keys.IsAction(msg, "slide-next", scope):
			u.goTo(u.index + 1)
		case u.keys.IsAction(msg, "slide-prev", scope):
			u.goTo(u.index - 1)
		case u.keys.IsAction(msg, "slide-first", scope):
			u.goTo(0)
		case u.keys.IsAction(msg, "slide-last", scope):
			u.goTo(u.deck.Len() - 1)
		case u.keys.IsAction(msg, "scroll-up", scope):
			u.viewport.SetYOffset(u.viewport.YOffset - 1)
		case u.keys.IsAction(msg, "scroll-down", scope):
			u.viewport.SetYOffset(u.viewport.YOffset + 1)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			u.viewport.SetYOffset(u.viewport.YOffset - 1)
		case tea.MouseButtonWheelDown:
			u.viewport.SetYOffset(u.viewport.YOffset + 1)
		}
	}
	return u, nil
}

func (u *Unit) goTo(i int) {
	if u.deck.Len() == 0 {
		u.index = 0
		return
	}
	u.index = min(max(0, i), u.deck.Len()-1)
}

func (u *Unit) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if u.deck.Len() == 0 {
		return u.placeholder(width, height)
	}
	u.layout(width, height)
	inner := max(1, width-2*sidePad)
	pad := strings.Repeat(" ", sidePad)

	slide := u.deck.Slides[u.index]
	counter := counterStyle.Render(fmt.Sprintf("%d/%d", u.index+1, u.deck.Len()))
	title := slideTitleStyle.Render(ansi.Truncate(slide.Title, max(1, inner-ansi.StringWidth(counter)-1), "…"))
	gap := max(1, inner-ansi.StringWidth(title)-ansi.StringWidth(counter))

	lines := []string{pad + title + strings.Repeat(" ", gap) + counter, ""}
	for _, line := range strings.Split(u.viewport.View(), "\n") {
		lines = append(lines, pad+line)
	}
	lines = fitLines(lines, height-1)
	lines = append(lines, pad+u.progress(inner))
	return strings.Join(lines, "\n")
}

// layout sizes the viewport for the given area and re-renders the slide body
// when the slide or width changed.
func (u *Unit) layout(width, height int) {
	bodyW := max(1, width-2*sidePad)
	bodyH := max(1, height-3)
	if bodyW != u.width || bodyH != u.height {
		u.width, u.height = bodyW, bodyH
		u.viewport.Width = bodyW
		u.viewport.Height = bodyH
		u.rendered = -1
	}
	if u.rendered == u.index {
		return
	}
	u.viewport.SetContent(u.renderBody(u.deck.Slides[u.index].Body, bodyW))
	u.viewport.GotoTop()
	u.rendered = u.index
}

func (u *Unit) renderBody(body string, width int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	if u.renderer == nil || u.rendererWidth != width {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if u.style == "auto" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(u.style))
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			u.log.Warn("markdown renderer unavailable", zap.String("style", u.style), zap.Error(err))
			return body
		}
		u.renderer, u.rendererWidth = r, width
	}
	out, err := u.renderer.Render(body)
	if err != nil {
		u.log.Warn("markdown render failed", zap.String("deck", u.deck.Name), zap.Int("slide", u.index+1), zap.Error(err))
		return body
	}
	return strings.Trim(out, "\n")
}

func (u *Unit) progress(width int) string {
	n := u.deck.Len()
	hint := ""
	if !u.viewport.AtBottom() {
		hint = " ↓ more"
	}
	barW := max(1, width-ansi.StringWidth(hint))
	filled := barW
	if n > 1 {
		filled = max(1, barW*(u.index+1)/n)
	}
	return progressOnStyle.Render(strings.Repeat("━", filled)) +
		progressOff.Render(strings.Repeat("─", barW-filled)) +
		counterStyle.Render(hint)
}

func (u *Unit) placeholder(width, height int) string {
	title := u.deck.Title
	if title == "" {
		title = "This chapter"
	}
	text := slideTitleStyle.Render(title) + "\n\n" +
		placeholderText.Render("Slides for this chapter are not written yet.")
	if keys := u.keys.KeysFor("back", core.ScopeChapter); len(keys) > 0 {
		text += "\n" + placeholderText.Render("Press "+strings.Join(keys, " or ")+" to return to the menu.")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

func fitLines(lines []string, height int) []string {
	height = max(0, height)
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

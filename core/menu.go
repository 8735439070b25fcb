package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/plslides/core/widgets"
)

const (
	tileWidth  = 30
	tileGap    = 2
	tileRowGap = 1

	// menuTop is the intro line plus a blank line above the grid.
	menuTop = 2
	// bodyTop is the header and status rows above the body.
	bodyTop = 2
	// gridLeft is the left padding before the first column.
	gridLeft = 1
)

type menuState struct {
	cursor    int
	offset    int
	query     string
	searching bool
	input     textinput.Model
}

func (s *menuState) clamp(n int) {
	if n <= 0 {
		s.cursor, s.offset = 0, 0
		return
	}
	s.cursor = min(max(0, s.cursor), n-1)
	s.offset = max(0, s.offset)
}

func (s *menuState) reset() {
	s.cursor, s.offset = 0, 0
}

func (m Model) menuGrid(tiles []Descriptor) widgets.Grid {
	cells := make([]widgets.Widget, len(tiles))
	for i, d := range tiles {
		cells[i] = widgets.Tile{
			Badge:    fmt.Sprintf("Chapter %d", d.ID),
			Title:    d.Title,
			Subtitle: d.Subtitle,
			Accent:   accentColor(d.AccentColor),
			Selected: i == m.menu.cursor,
		}
	}
	return widgets.Grid{
		Cells:      cells,
		CellWidth:  tileWidth,
		CellHeight: widgets.TileHeight,
		Gap:        tileGap,
		RowGap:     tileRowGap,
		Offset:     m.menu.offset,
	}
}

func (m Model) gridWidth() int {
	return max(1, m.width-2*gridLeft)
}

func (m Model) gridHeight() int {
	return max(1, m.bodyHeight()-menuTop)
}

func (m Model) bodyHeight() int {
	return max(0, m.height-bodyTop-1)
}

func (m *Model) moveCursor(delta int) {
	tiles := m.tiles()
	if len(tiles) == 0 {
		return
	}
	m.menu.cursor = min(max(0, m.menu.cursor+delta), len(tiles)-1)
	g := m.menuGrid(tiles)
	w, h := m.gridWidth(), m.gridHeight()
	offset := g.ScrollTo(m.menu.cursor/g.Columns(w), h)
	// never leave blank rows below the last one when the grid got taller
	m.menu.offset = min(offset, max(0, g.Rows(w)-g.VisibleRows(h)))
}

func (m *Model) openTile(i int) {
	tiles := m.tiles()
	if i < 0 || i >= len(tiles) {
		return
	}
	m.menu.cursor = i
	m.SelectChapter(tiles[i].ID)
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	if m.menu.searching {
		return m.updateSearch(msg)
	}
	scope := ScopeMenu
	cols := m.menuGrid(m.tiles()).Columns(m.gridWidth())
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return tea.Quit
	case m.keys.IsAction(msg, "help", scope):
		m.help = true
	case m.keys.IsAction(msg, "search", scope):
		m.menu.searching = true
		m.menu.input.SetValue(m.menu.query)
		m.menu.input.CursorEnd()
		return m.menu.input.Focus()
	case m.keys.IsAction(msg, "clear-filter", scope):
		if m.menu.query != "" {
			m.menu.query = ""
			m.menu.reset()
			m.SetStatus("Search cleared")
		}
	case m.keys.IsAction(msg, "open", scope):
		m.openTile(m.menu.cursor)
	case m.keys.IsAction(msg, "menu-left", scope):
		m.moveCursor(-1)
	case m.keys.IsAction(msg, "menu-right", scope):
		m.moveCursor(1)
	case m.keys.IsAction(msg, "menu-up", scope):
		m.moveCursor(-cols)
	case m.keys.IsAction(msg, "menu-down", scope):
		m.moveCursor(cols)
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			m.openTile(int(s[0] - '1'))
		}
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.keys.IsAction(msg, "search-apply", ScopeSearch):
		m.menu.searching = false
		m.menu.input.Blur()
		m.menu.query = strings.TrimSpace(m.menu.input.Value())
		m.menu.reset()
		if m.menu.query != "" {
			m.SetStatus(fmt.Sprintf("%d chapters match %q", len(m.tiles()), m.menu.query))
		}
		return nil
	case m.keys.IsAction(msg, "search-cancel", ScopeSearch):
		m.menu.searching = false
		m.menu.input.Blur()
		m.menu.input.SetValue("")
		m.menu.query = ""
		m.menu.reset()
		return nil
	}
	var cmd tea.Cmd
	m.menu.input, cmd = m.menu.input.Update(msg)
	m.menu.query = m.menu.input.Value()
	m.menu.reset()
	return cmd
}

// tileAt maps a terminal cell to a visible tile index, or -1.
func (m Model) tileAt(x, y int) int {
	return m.menuGrid(m.tiles()).CellAt(m.gridWidth(), m.gridHeight(), x-gridLeft, y-bodyTop-menuTop)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.selected != None {
		return m.forward(msg)
	}
	if m.help || m.menu.searching || msg.Action != tea.MouseActionPress {
		return nil
	}
	cols := m.menuGrid(m.tiles()).Columns(m.gridWidth())
	switch msg.Button {
	case tea.MouseButtonLeft:
		if i := m.tileAt(msg.X, msg.Y); i >= 0 {
			m.openTile(i)
		}
	case tea.MouseButtonWheelUp:
		m.moveCursor(-cols)
	case tea.MouseButtonWheelDown:
		m.moveCursor(cols)
	}
	return nil
}

func (m Model) renderMenu(tiles []Descriptor, height int) string {
	intro := menuIntroStyle.Render("Choose a chapter to start the slides")
	switch {
	case m.menu.searching:
		intro = m.menu.input.View()
	case m.menu.query != "":
		intro = menuIntroStyle.Render(fmt.Sprintf("Filter: %q  (esc clears)", m.menu.query))
	}
	lines := []string{intro, ""}
	if len(tiles) == 0 {
		lines = append(lines, emptyStyle.Render("No chapters match"))
		return fitHeight(strings.Join(lines, "\n"), height)
	}
	grid := m.menuGrid(tiles).Render(m.gridWidth(), m.gridHeight())
	pad := strings.Repeat(" ", gridLeft)
	for _, line := range strings.Split(grid, "\n") {
		lines = append(lines, pad+line)
	}
	return fitHeight(strings.Join(lines, "\n"), height)
}

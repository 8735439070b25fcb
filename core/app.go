package core

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type FrameKind int

const (
	FrameMenu FrameKind = iota
	FrameChapter
)

// Frame is the outcome of view selection: either the menu with its tiles or
// one chapter with its open unit.
type Frame struct {
	Kind    FrameKind
	Tiles   []Descriptor
	Chapter Descriptor
	Unit    Unit
}

// Model is the navigation shell. The selected chapter changes only through
// SelectChapter and ReturnToMenu.
type Model struct {
	width     int
	height    int
	registry  *Registry
	visible   []ID
	keys      *KeyRegistry
	log       *zap.Logger
	selected  ID
	unit      Unit
	menu      menuState
	help      bool
	status    string
	statusErr bool
	quitting  bool

	// OnMessage sees every message the shell does not consume itself, before
	// the open unit does.
	OnMessage func(msg tea.Msg) tea.Cmd
}

func NewModel(registry *Registry, visible []ID, keys *KeyRegistry, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search chapters"
	input.CharLimit = 64
	return Model{
		registry: registry,
		visible:  append([]ID(nil), visible...),
		keys:     keys,
		log:      log,
		menu:     menuState{input: input},
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Selected() ID {
	return m.selected
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// SelectChapter records id as the selection and opens its content. An id
// that does not resolve leaves no unit open; Frame then shows the menu.
func (m *Model) SelectChapter(id ID) {
	m.selected = id
	m.unit = nil
	m.help = false
	d, ok := m.registry.Lookup(id)
	if !ok {
		m.log.Warn("selected chapter is not registered", zap.Int("chapter", int(id)))
		return
	}
	m.unit = d.Content.Open(BackCmd(id))
	m.SetStatus(fmt.Sprintf("Chapter %d: %s", d.ID, d.Title))
	m.log.Debug("chapter opened", zap.Int("chapter", int(d.ID)), zap.String("title", d.Title))
}

// ReturnToMenu clears the selection. Calling it from the menu does nothing.
func (m *Model) ReturnToMenu() {
	if m.selected == None && m.unit == nil {
		return
	}
	m.log.Debug("returned to menu", zap.Int("chapter", int(m.selected)))
	m.selected = None
	m.unit = nil
	m.help = false
	m.SetStatus("Ready")
	m.moveCursor(0)
}

func (m Model) Frame() Frame {
	if m.selected != None && m.unit != nil {
		if d, ok := m.registry.Lookup(m.selected); ok {
			return Frame{Kind: FrameChapter, Chapter: d, Unit: m.unit}
		}
	}
	return Frame{Kind: FrameMenu, Tiles: m.tiles()}
}

// settle drops a selection that no longer resolves and keeps the menu
// cursor and scroll offset inside the current grid.
func (m *Model) settle() {
	if m.selected != None {
		if _, ok := m.registry.Lookup(m.selected); !ok || m.unit == nil {
			m.log.Warn("stale chapter selection, showing menu", zap.Int("chapter", int(m.selected)))
			m.selected = None
			m.unit = nil
		}
	}
	m.menu.clamp(len(m.tiles()))
	if m.selected == None {
		m.moveCursor(0)
	}
}

func (m Model) ActiveScope() string {
	switch {
	case m.help:
		return ScopeHelp
	case m.selected != None:
		return ScopeChapter
	case m.menu.searching:
		return ScopeSearch
	default:
		return ScopeMenu
	}
}

func (m Model) tiles() []Descriptor {
	return filterDescriptors(m.registry.VisibleDescriptors(m.visible), m.menu.query)
}

package slides

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/plslides/core"
)

const deckExt = ".yaml"

// ReloadedMsg carries a deck re-read from disk.
type ReloadedMsg struct {
	Deck Deck
}

type ReloadFailedMsg struct {
	Name string
	Err  error
}

// Library holds decks by name. It is only touched from the update loop.
type Library struct {
	decks map[string]Deck
	keys  *core.KeyRegistry
	style string
	log   *zap.Logger
}

type Option func(*Library)

// WithMarkdownStyle selects a glamour standard style; "auto" detects the
// terminal background.
func WithMarkdownStyle(style string) Option {
	return func(l *Library) {
		if strings.TrimSpace(style) != "" {
			l.style = style
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Library) {
		if log != nil {
			l.log = log
		}
	}
}

func NewLibrary(keys *core.KeyRegistry, opts ...Option) *Library {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	l := &Library{
		decks: make(map[string]Deck),
		keys:  keys,
		style: "auto",
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFS reads every deck file at the root of fsys.
func (l *Library) LoadFS(fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*"+deckExt)
	if err != nil {
		return fmt.Errorf("list decks: %w", err)
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read deck %s: %w", name, err)
		}
		d, err := Parse(deckName(name), data)
		if err != nil {
			return err
		}
		l.Add(d)
	}
	l.log.Info("decks loaded", zap.Int("count", len(names)))
	return nil
}

func (l *Library) LoadDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("deck dir: %w", err)
	}
	return l.LoadFS(os.DirFS(dir))
}

func (l *Library) Add(d Deck) {
	l.decks[d.Name] = d
}

func (l *Library) Deck(name string) (Deck, bool) {
	d, ok := l.decks[name]
	return d, ok
}

func (l *Library) Names() []string {
	out := make([]string, 0, len(l.decks))
	for name := range l.decks {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Source returns the content for a deck. The deck is resolved each time a
// unit opens, so reloads apply to the next open. A missing deck opens as an
// empty placeholder.
func (l *Library) Source(name string) *Source {
	return &Source{lib: l, name: name}
}

// Apply folds reload messages into the library and reports them on the
// status bar.
func (l *Library) Apply(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ReloadedMsg:
		l.Add(msg.Deck)
		l.log.Info("deck reloaded", zap.String("deck", msg.Deck.Name), zap.Int("slides", msg.Deck.Len()))
		return core.StatusCmd("Reloaded deck " + msg.Deck.Name)
	case ReloadFailedMsg:
		l.log.Error("deck reload failed", zap.String("deck", msg.Name), zap.Error(msg.Err))
		return core.ErrorCmd(msg.Err)
	}
	return nil
}

type Source struct {
	lib  *Library
	name string
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Open(back tea.Cmd) core.Unit {
	d, ok := s.lib.Deck(s.name)
	if !ok {
		d = Deck{Name: s.name}
	}
	return newUnit(d, back, s.lib.keys, s.lib.style, s.lib.log)
}

func deckName(file string) string {
	return strings.TrimSuffix(path.Base(file), deckExt)
}

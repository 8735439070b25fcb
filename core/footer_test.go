package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFooterUsesOverriddenKeys(t *testing.T) {
	reg, _ := testRegistry(t)
	keys := NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		"back": {"backspace"},
	}))
	m := NewModel(reg, nil, keys, nil)
	m.SelectChapter(3)

	footer := RenderFooter(m)
	if !strings.Contains(footer, "backspace back to menu") {
		t.Fatalf("footer should show the configured back key:\n%s", footer)
	}
	if !strings.Contains(footer, "ch3") {
		t.Fatalf("chapter footer should lead with the chapter badge:\n%s", footer)
	}
	if strings.Contains(footer, "esc back") {
		t.Fatalf("overridden key must not be shown")
	}
}

func TestFooterTruncatesWithEllipsis(t *testing.T) {
	reg, _ := testRegistry(t)
	m := NewModel(reg, nil, nil, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	m = next.(Model)

	footer := RenderFooter(m)
	if !strings.Contains(footer, "left prev") || !strings.Contains(footer, "…") {
		t.Fatalf("narrow footer should keep the first hints and elide the rest:\n%q", footer)
	}
	if strings.Contains(footer, "quit") {
		t.Fatalf("hints past the width must be dropped:\n%q", footer)
	}
}

func TestFooterShowsMatchCountWhileSearching(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(t, m, keyMsg("/"))
	for _, r := range "sytnax" {
		m = send(t, m, keyMsg(string(r)))
	}
	if footer := RenderFooter(m); !strings.Contains(footer, "2/12") || !strings.Contains(footer, "apply") {
		t.Fatalf("search footer should show matches and search keys:\n%s", footer)
	}
}

package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ScopeMenu    = "menu"
	ScopeSearch  = "menu:search"
	ScopeChapter = "chapter"
	ScopeHelp    = "help"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	if r == nil {
		return nil
	}
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// HelpBindings converts the scope's bindings for bubbles/help. The first key
// of each binding is the one shown.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	bindings := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	return out
}

// KeysFor lists the keys bound to action in scope, in binding order.
func (r *KeyRegistry) KeysFor(action, scope string) []string {
	var out []string
	for _, b := range r.BindingsForScope(scope) {
		if b.Action == action {
			out = append(out, b.Keys...)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	if r == nil {
		return false
	}
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// normalizeKey lowercases named keys but keeps single runes as typed, so
// "G" and "g" stay distinct.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if len([]rune(k)) == 1 {
		return k
	}
	if k == "" {
		// space arrives as " " and trims to nothing
		return "space"
	}
	return strings.ToLower(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

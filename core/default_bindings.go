package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"left", "h"}, Action: "menu-left", Description: "prev", Scopes: []string{ScopeMenu}},
		{Keys: []string{"right", "l"}, Action: "menu-right", Description: "next", Scopes: []string{ScopeMenu}},
		{Keys: []string{"up", "k"}, Action: "menu-up", Description: "row up", Scopes: []string{ScopeMenu}},
		{Keys: []string{"down", "j"}, Action: "menu-down", Description: "row down", Scopes: []string{ScopeMenu}},
		{Keys: []string{"enter"}, Action: "open", Description: "open chapter", Scopes: []string{ScopeMenu}},
		{Keys: []string{"/"}, Action: "search", Description: "search", Scopes: []string{ScopeMenu}},
		{Keys: []string{"esc"}, Action: "clear-filter", Description: "clear search", Scopes: []string{ScopeMenu}},
		{Keys: []string{"enter"}, Action: "search-apply", Description: "apply", Scopes: []string{ScopeSearch}},
		{Keys: []string{"esc"}, Action: "search-cancel", Description: "cancel", Scopes: []string{ScopeSearch}},
		{Keys: []string{"esc", "m"}, Action: "back", Description: "back to menu", Scopes: []string{ScopeChapter}},
		{Keys: []string{"right", "l", "space", "pgdown"}, Action: "slide-next", Description: "next slide", Scopes: []string{ScopeChapter}},
		{Keys: []string{"left", "h", "pgup"}, Action: "slide-prev", Description: "prev slide", Scopes: []string{ScopeChapter}},
		{Keys: []string{"home", "g"}, Action: "slide-first", Description: "first", Scopes: []string{ScopeChapter}},
		{Keys: []string{"end", "G"}, Action: "slide-last", Description: "last", Scopes: []string{ScopeChapter}},
		{Keys: []string{"up", "k"}, Action: "scroll-up", Description: "scroll up", Scopes: []string{ScopeChapter}},
		{Keys: []string{"down", "j"}, Action: "scroll-down", Description: "scroll down", Scopes: []string{ScopeChapter}},
		{Keys: []string{"?"}, Action: "help", Description: "help", Scopes: []string{ScopeMenu, ScopeChapter, ScopeHelp}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeHelp}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeMenu}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// a non-empty override.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}

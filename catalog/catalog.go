// Package catalog is the textbook's chapter table and its bundled decks.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/jask/plslides/core"
	"github.com/jask/plslides/slides"
)

//go:embed decks/*.yaml
var decks embed.FS

// VisibleIDs limits the menu to these chapters. Leave it empty to show every
// chapter.
var VisibleIDs = []core.ID{1, 2, 3, 4}

type chapter struct {
	id       core.ID
	title    string
	subtitle string
	accent   string
}

var chapters = []chapter{
	{1, "Preliminaries", "Why study programming languages", "#89b4fa"},
	{2, "Evolution of the Major Languages", "From Plankalkül to scripting", "#f5c2e7"},
	{3, "Describing Syntax and Semantics", "BNF, attribute grammars, semantics", "#a6e3a1"},
	{4, "Lexical and Syntax Analysis", "Scanners and parsers", "#fab387"},
	{5, "Names, Bindings, and Scopes", "Variables, lifetime, scope", "#f9e2af"},
	{6, "Data Types", "Primitive, structured, pointer types", "#94e2d5"},
	{7, "Expressions and Assignment", "Evaluation order and coercion", "#cba6f7"},
	{8, "Statement-Level Control", "Selection and iteration", "#f38ba8"},
	{9, "Subprograms", "Parameters and overloading", "#74c7ec"},
	{10, "Implementing Subprograms", "Activation records and stacks", "#eba0ac"},
	{11, "Abstract Data Types", "Encapsulation constructs", "#b4befe"},
	{12, "Object-Oriented Programming", "Inheritance and dynamic binding", "#f2cdcd"},
}

// Decks is the bundled deck files, rooted so deck files sit at the top level.
func Decks() fs.FS {
	sub, err := fs.Sub(decks, "decks")
	if err != nil {
		// the embed pattern guarantees the directory
		panic(err)
	}
	return sub
}

// DeckName is the deck file stem for a chapter.
func DeckName(id core.ID) string {
	return fmt.Sprintf("ch%02d", int(id))
}

// Descriptors binds every chapter to its deck in lib.
func Descriptors(lib *slides.Library) []core.Descriptor {
	out := make([]core.Descriptor, 0, len(chapters))
	for _, c := range chapters {
		out = append(out, core.Descriptor{
			ID:          c.id,
			Title:       c.title,
			Subtitle:    c.subtitle,
			AccentColor: c.accent,
			Content:     lib.Source(DeckName(c.id)),
		})
	}
	return out
}

func Registry(lib *slides.Library) (*core.Registry, error) {
	reg, err := core.NewRegistry(Descriptors(lib)...)
	if err != nil {
		return nil, fmt.Errorf("chapter registry: %w", err)
	}
	return reg, nil
}

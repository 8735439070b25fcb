package core

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

var testTitles = []string{
	"Preliminaries",
	"Evolution of the Major Languages",
	"Describing Syntax and Semantics",
	"Lexical and Syntax Analysis",
	"Names, Bindings, and Scopes",
	"Data Types",
	"Expressions and Assignment",
	"Statement-Level Control",
	"Subprograms",
	"Implementing Subprograms",
	"Abstract Data Types",
	"Object-Oriented Programming",
}

type fakeContent struct {
	id     ID
	opened int
	back   tea.Cmd
}

func (c *fakeContent) Open(back tea.Cmd) Unit {
	c.opened++
	c.back = back
	return &fakeUnit{id: c.id, back: back}
}

type fakeUnit struct {
	id   ID
	back tea.Cmd
	seen []tea.Msg
}

func (u *fakeUnit) Update(msg tea.Msg) (Unit, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return u, u.back
	}
	u.seen = append(u.seen, msg)
	return u, nil
}

func (u *fakeUnit) View(width, height int) string {
	return fmt.Sprintf("slides of chapter %d", u.id)
}

func testDescriptors() ([]Descriptor, map[ID]*fakeContent) {
	contents := make(map[ID]*fakeContent, len(testTitles))
	descs := make([]Descriptor, 0, len(testTitles))
	for i, title := range testTitles {
		id := ID(i + 1)
		c := &fakeContent{id: id}
		contents[id] = c
		descs = append(descs, Descriptor{ID: id, Title: title, Subtitle: "sub", AccentColor: "#a6e3a1", Content: c})
	}
	return descs, contents
}

func testRegistry(t *testing.T) (*Registry, map[ID]*fakeContent) {
	t.Helper()
	descs, contents := testDescriptors()
	reg, err := NewRegistry(descs...)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg, contents
}

func ids(descs []Descriptor) []ID {
	out := make([]ID, len(descs))
	for i, d := range descs {
		out[i] = d.ID
	}
	return out
}

func TestLookup(t *testing.T) {
	reg, _ := testRegistry(t)
	d, ok := reg.Lookup(3)
	if !ok || d.Title != "Describing Syntax and Semantics" {
		t.Fatalf("expected chapter 3, got %+v ok=%v", d, ok)
	}
	for _, id := range []ID{None, -4, 13, 99} {
		if _, ok := reg.Lookup(id); ok {
			t.Fatalf("lookup(%d) should be not-found", id)
		}
	}
}

func TestVisibleDescriptorsEmptyFilterShowsAll(t *testing.T) {
	reg, _ := testRegistry(t)
	want := []ID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if diff := cmp.Diff(want, ids(reg.VisibleDescriptors(nil))); diff != "" {
		t.Fatalf("nil filter (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, ids(reg.VisibleDescriptors([]ID{}))); diff != "" {
		t.Fatalf("empty filter (-want +got):\n%s", diff)
	}
}

func TestVisibleDescriptorsKeepsRegistryOrder(t *testing.T) {
	reg, _ := testRegistry(t)
	want := []ID{1, 2, 3, 4}
	for _, filter := range [][]ID{{1, 2, 3, 4}, {4, 3, 2, 1}, {3, 1, 4, 2, 2}} {
		if diff := cmp.Diff(want, ids(reg.VisibleDescriptors(filter))); diff != "" {
			t.Fatalf("filter %v (-want +got):\n%s", filter, diff)
		}
	}
}

func TestVisibleDescriptorsDropsUnknownIDs(t *testing.T) {
	reg, _ := testRegistry(t)
	got := reg.VisibleDescriptors([]ID{1, 99})
	if diff := cmp.Diff([]ID{1}, ids(got)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if got := reg.VisibleDescriptors([]ID{99}); len(got) != 0 {
		t.Fatalf("only unknown ids should give no chapters, got %v", ids(got))
	}
}

func TestNewRegistryReportsEveryProblem(t *testing.T) {
	c := &fakeContent{}
	_, err := NewRegistry(
		Descriptor{ID: 1, Title: "One", Content: c},
		Descriptor{ID: 0, Title: "Zero", Content: c},
		Descriptor{ID: 1, Title: "Again", Content: c},
		Descriptor{ID: 2, Title: " ", Content: c},
		Descriptor{ID: 3, Title: "Three"},
	)
	if err == nil {
		t.Fatalf("expected errors")
	}
	if n := len(multierr.Errors(err)); n != 4 {
		t.Fatalf("expected 4 problems, got %d: %v", n, err)
	}
	for _, want := range []string{"position 1", "chapter 1: duplicate", "chapter 2: empty title", "chapter 3: no content"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should mention %q", err, want)
		}
	}
}

func TestRegistryAllIsACopy(t *testing.T) {
	reg, _ := testRegistry(t)
	all := reg.All()
	all[0].Title = "changed"
	if d, _ := reg.Lookup(1); d.Title != "Preliminaries" {
		t.Fatalf("registry must not be mutable through All")
	}
	if reg.Len() != 12 {
		t.Fatalf("expected 12 chapters, got %d", reg.Len())
	}
}

package core

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// ID identifies a chapter. Valid ids are positive; None marks "no chapter".
type ID int

const None ID = 0

// Descriptor is the immutable metadata of one chapter plus its content.
type Descriptor struct {
	ID          ID
	Title       string
	Subtitle    string
	AccentColor string
	Content     Content
}

// Registry is the ordered, read-only chapter table.
type Registry struct {
	descs []Descriptor
	index map[ID]int
}

// NewRegistry builds a registry in argument order. Every invalid descriptor is
// reported in the returned error.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		descs: make([]Descriptor, 0, len(descs)),
		index: make(map[ID]int, len(descs)),
	}
	var err error
	for pos, d := range descs {
		if d.ID <= None {
			err = multierr.Append(err, fmt.Errorf("chapter at position %d: id must be positive, got %d", pos, d.ID))
			continue
		}
		if _, dup := r.index[d.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("chapter %d: duplicate id", d.ID))
			continue
		}
		if strings.TrimSpace(d.Title) == "" {
			err = multierr.Append(err, fmt.Errorf("chapter %d: empty title", d.ID))
		}
		if d.Content == nil {
			err = multierr.Append(err, fmt.Errorf("chapter %d: no content", d.ID))
		}
		r.index[d.ID] = len(r.descs)
		r.descs = append(r.descs, d)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Lookup returns the chapter with id. A missing id reports false; callers
// treat that as "show the menu", not as an error.
func (r *Registry) Lookup(id ID) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.descs[i], true
}

// VisibleDescriptors returns the chapters named in filter, in registry order.
// An empty filter selects every chapter; unknown ids are ignored.
func (r *Registry) VisibleDescriptors(filter []ID) []Descriptor {
	if r == nil {
		return nil
	}
	if len(filter) == 0 {
		return r.All()
	}
	out := make([]Descriptor, 0, len(filter))
	for _, d := range r.descs {
		if slices.Contains(filter, d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// All returns a copy of every chapter in registry order.
func (r *Registry) All() []Descriptor {
	if r == nil {
		return nil
	}
	return slices.Clone(r.descs)
}

// Len is the number of registered chapters.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.descs)
}

// Package slides implements chapter content as decks of markdown slides.
package slides

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Slide struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Deck is one chapter's slides. Name comes from the file name, not the
// document.
type Deck struct {
	Name   string  `yaml:"-"`
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
}

func (d Deck) Len() int {
	return len(d.Slides)
}

// Parse decodes a YAML deck. Unknown fields are rejected so typos in a deck
// file do not silently drop content.
func Parse(name string, data []byte) (Deck, error) {
	var d Deck
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Deck{}, fmt.Errorf("deck %s: %w", name, err)
	}
	d.Name = name
	if err := d.validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}

func (d Deck) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("deck %s: missing title", d.Name)
	}
	for i, s := range d.Slides {
		if strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Body) == "" {
			return fmt.Errorf("deck %s: slide %d is empty", d.Name, i+1)
		}
	}
	return nil
}

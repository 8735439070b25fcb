// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (tile chrome, tile grid geometry, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation state, scope logic
package widgets

type Widget interface {
	Render(width, height int) string
}

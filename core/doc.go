// Package core contains the chapter registry and the navigation shell.
//
// Allowed here:
// - the chapter table and its lookup/visibility rules
// - the shell model: selected chapter, menu state, message routing
// - key registry and the content unit contract shared with slide decks
//
// Not allowed here:
// - slide deck parsing or slide-stepping state (owned by content units)
// - low-level widget rendering primitives
package core

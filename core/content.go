package core

import tea "github.com/charmbracelet/bubbletea"

// Content is a chapter's renderable. Open starts a fresh unit whose back
// command asks the shell to return to the menu.
type Content interface {
	Open(back tea.Cmd) Unit
}

// Unit is an open chapter. It owns its slide-stepping state; the shell only
// forwards messages and draws the returned view.
type Unit interface {
	Update(msg tea.Msg) (Unit, tea.Cmd)
	View(width, height int) string
}

// BackCmd is the back action handed to the unit opened for id.
func BackCmd(id ID) tea.Cmd {
	return func() tea.Msg { return BackToMenuMsg{ID: id} }
}

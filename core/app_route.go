package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.route(msg)
	m.settle()
	return m, cmd
}

func (m *Model) route(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return nil
	case SelectChapterMsg:
		m.SelectChapter(msg.ID)
		return nil
	case BackToMenuMsg:
		if msg.ID == m.selected {
			m.ReturnToMenu()
		}
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmds []tea.Cmd
	if m.OnMessage != nil {
		cmds = append(cmds, m.OnMessage(msg))
	}
	if m.menu.searching {
		var cmd tea.Cmd
		m.menu.input, cmd = m.menu.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.forward(msg))
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	scope := m.ActiveScope()
	if m.help {
		if m.keys.IsAction(msg, "help", scope) || m.keys.IsAction(msg, "close", scope) {
			m.help = false
		}
		return nil
	}
	if m.selected == None {
		return m.updateMenu(msg)
	}
	if m.keys.IsAction(msg, "help", scope) {
		m.help = true
		return nil
	}
	return m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.unit == nil {
		return nil
	}
	next, cmd := m.unit.Update(msg)
	if next != nil {
		m.unit = next
	}
	return cmd
}

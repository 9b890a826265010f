package tui

import (
	"github.com/katafuchix/colorbox/internal/colorstate"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the TUI model. Required by Bubble Tea.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.last = colorstate.State(msg)
		if m.last.Kind == colorstate.Resolved {
			m.stage = Picker
		}
		// Re-arm the subscription pump for the next emission.
		return m, waitForState(m.updates)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.focused = (m.focused + 1) % buttonCount

		case key.Matches(msg, m.keys.Prev):
			m.focused = (m.focused + buttonCount - 1) % buttonCount

		case key.Matches(msg, m.keys.Tap):
			m = m.press(m.focused)

		case key.Matches(msg, m.keys.Init):
			m = m.press(btnInitialize)

		case key.Matches(msg, m.keys.Blue):
			m = m.press(btnBlue)

		case key.Matches(msg, m.keys.Red):
			m = m.press(btnRed)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if b, ok := m.buttonAt(msg.X, msg.Y); ok {
				m = m.press(b)
			}
		}
	}

	return m, nil
}

// press taps a button: focus follows the tap and the mapped event is fed
// to the machine. The resulting state comes back through the
// subscription as a stateMsg; the view never reads the machine directly.
func (m Model) press(b button) Model {
	m.focused = b
	m.lastEvent = b.event()
	m.hasEvent = true
	m.machine.Process(m.lastEvent)
	return m
}

package tui

import (
	"github.com/katafuchix/colorbox/internal/colorstate"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// button identifies one of the three tappable buttons on the screen.
type button int

const (
	btnInitialize button = iota
	btnBlue
	btnRed
	buttonCount
)

func (b button) label() string {
	switch b {
	case btnInitialize:
		return "Initialize"
	case btnBlue:
		return "Blue"
	case btnRed:
		return "Red"
	}
	return ""
}

// event maps a button to the machine event it dispatches.
func (b button) event() colorstate.Event {
	switch b {
	case btnBlue:
		return colorstate.SetBlue
	case btnRed:
		return colorstate.SetRed
	}
	return colorstate.Initialize
}

// keyMap declares the key bindings for the single screen.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Tap  key.Binding
	Init key.Binding
	Blue key.Binding
	Red  key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab", "right", "down"), key.WithHelp("tab", "next button")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "up"), key.WithHelp("shift+tab", "prev button")),
		Tap:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "tap")),
		Init: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "initialize")),
		Blue: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "blue")),
		Red:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "red")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Tap, k.Blue, k.Red, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Tap},
		{k.Init, k.Blue, k.Red, k.Quit},
	}
}

// buttonAt maps terminal coordinates to the button under them, if any.
// The geometry mirrors View exactly: a fixed button row below the swatch,
// buttons joined left to right with a fixed gap.
func (m Model) buttonAt(x, y int) (button, bool) {
	if y < buttonRowY || y >= buttonRowY+buttonRowHeight {
		return 0, false
	}
	x0 := 0
	for b := button(0); b < buttonCount; b++ {
		w := lipgloss.Width(m.renderButton(b))
		if x >= x0 && x < x0+w {
			return b, true
		}
		x0 += w + buttonGap
	}
	return 0, false
}

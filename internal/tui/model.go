package tui

import (
	"github.com/katafuchix/colorbox/internal/colorstate"
	"github.com/katafuchix/colorbox/internal/config"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Stage defines the current view/state of the TUI application.
type Stage int

const (
	// Splash is shown before the machine has processed any event.
	Splash Stage = iota
	// Picker is the single working screen: swatch plus buttons.
	Picker
)

// stateMsg carries a state pushed by the machine's listener into the
// Bubble Tea loop.
type stateMsg colorstate.State

// Model holds the state for the TUI application. Exported for use in main.go.
type Model struct {
	stage   Stage
	machine *colorstate.Machine
	updates chan colorstate.State

	// Latest state delivered through the subscription, and the event
	// that produced it (presentation only, shown in the status line).
	last      colorstate.State
	lastEvent colorstate.Event
	hasEvent  bool

	focused       button
	keys          keyMap
	help          help.Model
	palette       Palette
	width, height int
}

// NewModel creates the initial TUI model. The machine is injected by the
// caller and the model subscribes to it; state reaches the view only
// through that subscription.
func NewModel(machine *colorstate.Machine, cfg config.Config) Model {
	updates := make(chan colorstate.State, 8)
	machine.Subscribe(func(s colorstate.State) {
		updates <- s
	})

	return Model{
		stage:   Splash,
		machine: machine,
		updates: updates,
		focused: btnInitialize,
		keys:    newKeyMap(),
		help:    help.New(),
		palette: NewPalette(cfg.UI.BlueColor, cfg.UI.RedColor),
	}
}

// Init starts the subscription pump. Required by Bubble Tea.
func (m Model) Init() tea.Cmd {
	return waitForState(m.updates)
}

// waitForState blocks until the machine emits a state and hands it to the
// update loop. Re-armed after every delivery.
func waitForState(ch <-chan colorstate.State) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-ch)
	}
}

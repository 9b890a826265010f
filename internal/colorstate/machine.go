package colorstate

// Package colorstate implements the color state machine driving the demo
// screen: three input events, one observable state, and a listener hook
// the presentation layer subscribes to for re-renders.

// Event is an input signal requesting a state transition.
type Event int

const (
	Initialize Event = iota
	SetBlue
	SetRed
)

// String returns the event name as shown in the status line.
func (e Event) String() string {
	switch e {
	case Initialize:
		return "Initialize"
	case SetBlue:
		return "SetBlue"
	case SetRed:
		return "SetRed"
	}
	return "Unknown"
}

// StateKind discriminates the two observable conditions of the machine.
type StateKind int

const (
	Uninitialized StateKind = iota
	Resolved
)

// State is the machine's externally observable condition. IsBlue is only
// meaningful when Kind is Resolved.
type State struct {
	Kind   StateKind
	IsBlue bool
}

// Listener receives every state emitted by the machine, one call per
// processed event, in processing order.
type Listener func(State)

// Machine owns one State value and the internal color flag used to seed
// the next Resolved state. It is not safe for concurrent use; the demo
// drives it from the single UI update loop.
type Machine struct {
	state     State
	isBlue    bool
	listeners []Listener
}

// New returns a machine in the Uninitialized state with the color flag
// defaulting to blue.
func New() *Machine {
	return &Machine{isBlue: true}
}

// Subscribe registers a listener notified after each processed event.
func (m *Machine) Subscribe(fn Listener) {
	m.listeners = append(m.listeners, fn)
}

// State returns the current observable state.
func (m *Machine) State() State {
	return m.state
}

// Process handles a single event synchronously: SetBlue and SetRed update
// the color flag, Initialize re-emits whatever the flag currently holds.
// Every event is accepted in every state; after the first event the
// machine is always Resolved. Listeners are notified before Process
// returns the new state.
func (m *Machine) Process(e Event) State {
	switch e {
	case SetBlue:
		m.isBlue = true
	case SetRed:
		m.isBlue = false
	}
	m.state = State{Kind: Resolved, IsBlue: m.isBlue}
	for _, fn := range m.listeners {
		fn(m.state)
	}
	return m.state
}

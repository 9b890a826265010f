package tui

import (
	"testing"

	"github.com/katafuchix/colorbox/internal/colorstate"
	"github.com/katafuchix/colorbox/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func testConfig() config.Config {
	return config.Config{UI: config.UIConfig{
		BlueColor:    "#1E66F5",
		RedColor:     "#D20F39",
		AltScreen:    true,
		MouseEnabled: true,
	}}
}

func testModel() Model {
	return NewModel(colorstate.New(), testConfig())
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	return applyMsg(t, m, keyMsg(k))
}

// drainState pulls the state the machine pushed into the subscription
// channel and feeds it through Update, as the program loop would.
func drainState(t *testing.T, m Model) Model {
	t.Helper()
	select {
	case s := <-m.updates:
		return applyMsg(t, m, stateMsg(s))
	default:
		t.Fatal("no state emission pending")
		return m
	}
}

func requireNoState(t *testing.T, m Model) {
	t.Helper()
	select {
	case s := <-m.updates:
		t.Fatalf("unexpected state emission %+v", s)
	default:
	}
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func TestStartsOnSplash(t *testing.T) {
	m := testModel()
	if m.stage != Splash {
		t.Fatalf("expected Splash stage, got %v", m.stage)
	}
	requireNoState(t, m)
}

func TestPressRThenBFlipsColor(t *testing.T) {
	m := testModel()

	m = press(t, m, "r")
	m = drainState(t, m)
	if m.stage != Picker {
		t.Fatalf("expected Picker stage after first event, got %v", m.stage)
	}
	if m.last.Kind != colorstate.Resolved || m.last.IsBlue {
		t.Fatalf("expected red after r, got %+v", m.last)
	}

	m = press(t, m, "b")
	m = drainState(t, m)
	if !m.last.IsBlue {
		t.Fatalf("expected blue after b, got %+v", m.last)
	}
}

func TestInitializeKeepsPriorColor(t *testing.T) {
	m := testModel()
	m = drainState(t, press(t, m, "r"))
	m = drainState(t, press(t, m, "i"))
	if m.last.IsBlue {
		t.Fatalf("initialize after red should keep red, got %+v", m.last)
	}
	if m.lastEvent != colorstate.Initialize {
		t.Fatalf("expected lastEvent Initialize, got %v", m.lastEvent)
	}
}

func TestTabCyclesFocusAndWraps(t *testing.T) {
	m := testModel()
	if m.focused != btnInitialize {
		t.Fatalf("expected initial focus on Initialize, got %v", m.focused)
	}
	m = press(t, m, "tab")
	if m.focused != btnBlue {
		t.Fatalf("expected focus Blue, got %v", m.focused)
	}
	m = press(t, m, "tab")
	if m.focused != btnRed {
		t.Fatalf("expected focus Red, got %v", m.focused)
	}
	m = press(t, m, "tab")
	if m.focused != btnInitialize {
		t.Fatalf("expected focus to wrap to Initialize, got %v", m.focused)
	}
	m = press(t, m, "shift+tab")
	if m.focused != btnRed {
		t.Fatalf("expected reverse wrap to Red, got %v", m.focused)
	}
}

func TestEnterTapsFocusedButton(t *testing.T) {
	m := testModel()
	m = press(t, m, "tab") // focus Blue
	m = press(t, m, "enter")
	m = drainState(t, m)
	if m.lastEvent != colorstate.SetBlue || !m.last.IsBlue {
		t.Fatalf("expected enter to tap Blue, got event %v state %+v", m.lastEvent, m.last)
	}
}

func TestOnePushPerTap(t *testing.T) {
	m := testModel()
	m = press(t, m, "b")
	m = drainState(t, m)
	requireNoState(t, m)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := testModel()
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestWindowSizeStored(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Fatalf("size not stored: %dx%d", m.width, m.height)
	}
}

// ---------------------------------------------------------------------------
// Mouse handling
// ---------------------------------------------------------------------------

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// centerOf returns a coordinate inside the given button, derived from the
// same rendering the view uses.
func centerOf(m Model, b button) (int, int) {
	x := 0
	for i := button(0); i < b; i++ {
		x += lipgloss.Width(m.renderButton(i)) + buttonGap
	}
	x += lipgloss.Width(m.renderButton(b)) / 2
	return x, buttonRowY + 1
}

func TestMouseClickTapsButton(t *testing.T) {
	m := testModel()
	x, y := centerOf(m, btnRed)
	m = applyMsg(t, m, click(x, y))
	m = drainState(t, m)
	if m.lastEvent != colorstate.SetRed || m.last.IsBlue {
		t.Fatalf("expected click to tap Red, got event %v state %+v", m.lastEvent, m.last)
	}
	if m.focused != btnRed {
		t.Fatalf("expected focus to follow the click, got %v", m.focused)
	}
}

func TestMouseClickOutsideButtonsIgnored(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, click(0, 0))
	requireNoState(t, m)
	if m.stage != Splash {
		t.Fatalf("expected stage unchanged, got %v", m.stage)
	}
}

func TestButtonAtAgreesWithRenderedRow(t *testing.T) {
	m := testModel()
	for b := button(0); b < buttonCount; b++ {
		x, y := centerOf(m, b)
		got, ok := m.buttonAt(x, y)
		if !ok || got != b {
			t.Errorf("buttonAt(%d, %d): got %v ok=%v, want %v", x, y, got, ok, b)
		}
	}
	if _, ok := m.buttonAt(0, buttonRowY-1); ok {
		t.Error("expected no hit above the button row")
	}
}

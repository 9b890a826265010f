package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI based on the current model state. Required by Bubble Tea.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Colorbox"))
	b.WriteString("\n\n")

	b.WriteString(m.renderSwatch())
	b.WriteString("\n\n")

	b.WriteString(m.renderButtonRow())
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// renderSwatch draws the rectangle. Before the first event it is an empty
// frame; once resolved it is filled with the configured blue or red.
func (m Model) renderSwatch() string {
	switch m.stage {
	case Picker:
		if m.last.IsBlue {
			return m.palette.Blue.Render("")
		}
		return m.palette.Red.Render("")
	default:
		return m.palette.Empty.Render("uninitialized")
	}
}

func (m Model) renderButton(b button) string {
	if b == m.focused {
		return FocusedButtonStyle.Render(b.label())
	}
	return ButtonStyle.Render(b.label())
}

func (m Model) renderButtonRow() string {
	gap := strings.Repeat(" ", buttonGap)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(btnInitialize), gap,
		m.renderButton(btnBlue), gap,
		m.renderButton(btnRed),
	)
}

func (m Model) renderStatus() string {
	if !m.hasEvent || m.stage == Splash {
		return HelpStyle.Render("no events processed yet")
	}
	color := "red"
	if m.last.IsBlue {
		color = "blue"
	}
	return StatusStyle.Render(fmt.Sprintf("last event: %s (showing %s)", m.lastEvent, color))
}

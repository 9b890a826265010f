package tui

import "github.com/charmbracelet/lipgloss"

// Package tui contains all the Bubble Tea related code for the terminal
// user interface, including the model, update logic, view rendering,
// input handling, and styling.

// View geometry. buttonAt in input.go depends on these staying in sync
// with the frame built in View.
const (
	swatchInnerWidth  = 28
	swatchInnerHeight = 5

	// title line + blank + swatch box (inner height + border) + blank
	buttonRowY      = 2 + swatchInnerHeight + 2 + 1
	buttonRowHeight = 3
	buttonGap       = 2
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	HelpStyle = BlurredStyle.Copy()

	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 3)

	FocusedButtonStyle = ButtonStyle.Copy().
				BorderForeground(lipgloss.Color("205")).
				Foreground(lipgloss.Color("205")).
				Bold(true)

	swatchBase = lipgloss.NewStyle().
			Width(swatchInnerWidth).
			Height(swatchInnerHeight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

// Palette holds the swatch styles built from the configured colors.
type Palette struct {
	Blue  lipgloss.Style
	Red   lipgloss.Style
	Empty lipgloss.Style
}

// NewPalette builds swatch styles for the two configured hex colors. The
// Empty style frames the same area before the first event is processed.
func NewPalette(blue, red string) Palette {
	return Palette{
		Blue: swatchBase.Copy().Background(lipgloss.Color(blue)),
		Red:  swatchBase.Copy().Background(lipgloss.Color(red)),
		Empty: swatchBase.Copy().
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("240")),
	}
}

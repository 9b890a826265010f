package main

import (
	"log"

	"github.com/katafuchix/colorbox/internal/colorstate"
	"github.com/katafuchix/colorbox/internal/config"
	"github.com/katafuchix/colorbox/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	machine := colorstate.New()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.NewModel(machine, cfg), opts...)
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivofrolov/muspace/config"
	"github.com/ivofrolov/muspace/debug"
	"github.com/ivofrolov/muspace/keyboard"
	"github.com/ivofrolov/muspace/theme"
	"github.com/ivofrolov/muspace/tui"
)

func main() {
	if os.Getenv("MUSPACE_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Load theme
	palette := theme.Default()
	if cfg.UI.Palette != "" {
		palette = theme.MustLoadGPL(cfg.UI.Palette)
	}
	th := theme.New(palette)

	// Create the keyboard controller
	opts := keyboard.DefaultOptions()
	opts.CellSize = cfg.Board.CellSize
	opts.Gap = cfg.Board.Gap
	if cfg.Board.RootPolicy == config.RootHover {
		opts.RootPolicy = keyboard.RootHover
	}
	board := keyboard.New(opts)
	if cfg.UI.LastMode == "place" {
		board.SetMode(keyboard.ModePlace)
	}

	// Create and run TUI
	m := tui.NewModel(board, th, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"indexdeck/internal/adapters/indexer"
	"indexdeck/internal/adapters/tui"
	"indexdeck/internal/config"
	"indexdeck/internal/logging"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.FromConfig(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := indexer.New(
		indexer.WithBaseURL(cfg.ServerURL),
		indexer.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(client, cfg, log)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

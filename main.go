package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylan/specdash/config"
	"github.com/dylan/specdash/engine"
	"github.com/dylan/specdash/logging"
	"github.com/dylan/specdash/session"
	"github.com/dylan/specdash/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/specdash/config.toml)")
	flag.Parse()

	path := *configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		// If using default path and file doesn't exist, use empty config
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg = config.Config{}
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	logger, err := logging.New(cfg.ResolvedLogPath(), cfg.Logging.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := engine.NewClient(cfg.ResolvedBaseURL(), cfg.ResolvedTimeout(), logger)
	store := session.NewStore()
	orch := session.NewOrchestrator(store, client, logger)

	app := tui.NewApp(cfg, store, orch)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

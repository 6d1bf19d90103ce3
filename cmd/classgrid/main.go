package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/classgrid/internal/config"
	"github.com/javiermolinar/classgrid/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config %s: %w", config.Path(), err)
	}

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}

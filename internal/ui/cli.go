// Package ui provides the classgrid command line interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/config"
	"github.com/javiermolinar/classgrid/internal/db"
	"github.com/javiermolinar/classgrid/internal/logging"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  schedule.Store
	repo   *schedule.Repository
	config *config.Config
	logger *zap.Logger
	root   *cobra.Command
	out    io.Writer
	debug  bool // Enable debug logging

	// interactive is set while the TUI owns the terminal
	interactive bool
	configPath  string
}

// NewApp creates a new CLI application. A nil store is opened lazily from
// the configured database path.
func NewApp(store schedule.Store, cfg *config.Config) *App {
	a := &App{
		store:      store,
		config:     cfg,
		out:        os.Stdout,
		logger:     zap.NewNop(),
		configPath: config.Path(),
	}
	a.repo = schedule.NewRepository(schedule.WithWarningFunc(a.printWarning))

	a.root = &cobra.Command{
		Use:   "classgrid",
		Short: "Build a weekly class timetable",
		Long: `classgrid assembles a personal weekly timetable from class sessions.

Import sessions from a room occupancy spreadsheet, add or edit them by hand,
and arrange them on a Monday-Friday grid of one-hour slots. Overlapping
sessions are allowed but always reported.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.interactive = true
			err := tui.Run(a.repo, a.config, a.logger)
			a.interactive = false
			if err != nil {
				return err
			}
			return a.save(cmd.Context())
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to the configured log file")
	a.root.PersistentFlags().BoolVar(&cfg.UI.NoColor, "no-color", cfg.UI.NoColor, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.removeCourseCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.updateCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.searchCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "classgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// setup runs before every command: it builds the logger, opens the store and
// loads the saved timetable into the repository.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.config.UI.NoColor {
		DisableColor()
	}

	logCfg := a.config.Log
	logCfg.Debug = logCfg.Debug || a.debug
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	a.logger = logger

	if cmd.Name() == "version" || cmd.Name() == "config" {
		return nil
	}
	return a.load(cmd.Context())
}

func (a *App) load(ctx context.Context) error {
	if err := a.ensureStore(); err != nil {
		return err
	}
	entries, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading timetable: %w", err)
	}
	a.repo.Reset(entries)
	return nil
}

func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	store, err := db.New(a.config.Storage.DBPath, a.logger)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.store = store
	return nil
}

// save writes the repository back to the store.
func (a *App) save(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.ensureStore(); err != nil {
		return err
	}
	if err := a.store.Save(ctx, a.repo.Entries()); err != nil {
		return fmt.Errorf("saving timetable: %w", err)
	}
	return nil
}

func (a *App) printWarning(w schedule.ConflictWarning) {
	a.logger.Info("conflict warning", zap.Strings("conflicts", w.Messages()))
	if a.interactive {
		return
	}
	for _, msg := range w.Messages() {
		fmt.Fprintf(a.out, "%s %s\n", formatWarning("Warning:"), msg)
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

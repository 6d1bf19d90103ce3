package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/classgrid/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		Long: `Print the configuration file path and the values in effect, after
defaults and environment overrides are applied.

With --init, writes the current values to the configuration file if it does
not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			configPath := a.configPath
			fmt.Fprintf(a.out, "Config file: %s\n\n", configPath)

			if initFile {
				_, err := os.Stat(configPath)
				switch {
				case err == nil:
					fmt.Fprintln(a.out, "Config file already exists, leaving it unchanged.")
				case os.IsNotExist(err):
					if err := a.config.SaveTo(configPath); err != nil {
						return fmt.Errorf("saving config: %w", err)
					}
					fmt.Fprintf(a.out, "Created %s\n\n", configPath)
				default:
					return fmt.Errorf("checking config file: %w", err)
				}
			}

			printConfig(a.out, a.config)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with the current values")
	return cmd
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[import]")
	fmt.Fprintf(w, "  sheet    = %s\n", valueOr(cfg.Import.Sheet, "(first sheet)"))
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path  = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme    = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  no_color = %t\n", cfg.UI.NoColor)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  debug    = %t\n", cfg.Log.Debug)
	fmt.Fprintf(w, "  file     = %s\n", cfg.Log.File)
}

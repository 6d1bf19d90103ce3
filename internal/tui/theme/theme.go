// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "dark"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgSelection string `toml:"bg_selection"` // Cursor cell
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Empty cells, help text
	Accent      string `toml:"accent"`       // Title, headers, borders
	Course      string `toml:"course"`       // Course names
	Match       string `toml:"match"`        // Search matches
	Clash       string `toml:"clash"`        // Cells with overlapping sessions
	Picked      string `toml:"picked"`       // Session being moved
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to the default theme if the name is unknown.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// MustLoad is like Load but returns the default theme on any error.
func MustLoad(name string) *Theme {
	t, err := Load(name)
	if err != nil {
		return &Theme{Name: DefaultName}
	}
	return t
}

func (t *Theme) applyDefaults() {
	t.Course = coalesce(t.Course, t.Fg)
	t.Match = coalesce(t.Match, t.Accent)
	t.Picked = coalesce(t.Picked, t.Accent)
	t.BgSelection = coalesce(t.BgSelection, t.Bg)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"dark", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}

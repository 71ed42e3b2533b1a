// Package config reads the optional config.toml in the app config
// directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nrun-sh/nrun/internal/ui/theme"
)

// Config is the user-editable application configuration.
type Config struct {
	Theme ThemeConfig `toml:"theme"`
}

// ThemeConfig overrides individual palette colors. Empty fields keep the
// default.
type ThemeConfig struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Accent    string `toml:"accent"`
	Favorite  string `toml:"favorite"`
	Muted     string `toml:"muted"`
	Text      string `toml:"text"`
}

// Load reads config.toml from baseDir. A missing file is normal and yields
// the zero config; a corrupt file is logged and treated the same way.
func Load(baseDir string) Config {
	path := filepath.Join(baseDir, "config.toml")
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.Warn("ignoring corrupt config file", "path", path, "err", err)
		}
		return Config{}
	}
	return cfg
}

// BuildTheme applies the overrides onto the default palette.
func (c Config) BuildTheme() theme.Theme {
	t := theme.Default()
	applyColor(&t.Primary, c.Theme.Primary)
	applyColor(&t.Secondary, c.Theme.Secondary)
	applyColor(&t.Accent, c.Theme.Accent)
	applyColor(&t.Favorite, c.Theme.Favorite)
	applyColor(&t.Muted, c.Theme.Muted)
	applyColor(&t.Text, c.Theme.Text)
	return t
}

func applyColor(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}

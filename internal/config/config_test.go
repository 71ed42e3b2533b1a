package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nrun-sh/nrun/internal/ui/theme"
)

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(t.TempDir())
	if cfg.Theme.Primary != "" {
		t.Errorf("cfg = %+v, want zero config", cfg)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[theme\nbad"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(dir)
	if cfg.Theme.Primary != "" {
		t.Errorf("cfg = %+v, want zero config on corrupt file", cfg)
	}
}

func TestLoadThemeOverrides(t *testing.T) {
	dir := t.TempDir()
	contents := "[theme]\nprimary = \"#FF0000\"\nfavorite = \"#00FF00\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if cfg.Theme.Primary != "#FF0000" {
		t.Errorf("Primary = %q", cfg.Theme.Primary)
	}

	built := cfg.BuildTheme()
	if string(built.Primary) != "#FF0000" {
		t.Errorf("built Primary = %q", built.Primary)
	}
	if string(built.Favorite) != "#00FF00" {
		t.Errorf("built Favorite = %q", built.Favorite)
	}
	if built.Accent != theme.Default().Accent {
		t.Errorf("unset color changed: %q", built.Accent)
	}
}

func TestBuildThemeDefaults(t *testing.T) {
	built := Config{}.BuildTheme()
	if built != theme.Default() {
		t.Errorf("zero config should yield default theme")
	}
}

// Package store persists per-project state (favorites, recents, script
// configuration) under the user config directory.
//
// Layout:
//
//	<user-config>/nrun/
//	  nrun.log
//	  config.toml
//	  <project-id>/
//	    favorites.json
//	    recents.json
//	    script_configs.json
//	    args_history.json
//	    global_env.json
//
// Loads never fail the program: a missing or corrupt file yields the empty
// value and a warning in the log.
package store

import (
	"os"
	"path/filepath"
)

const appDirName = "nrun"

// BaseDir is the application config directory, e.g. ~/.config/nrun on
// Linux.
func BaseDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, appDirName), nil
}

// ProjectDir is the state directory for one project.
func ProjectDir(projectID string) (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, projectID), nil
}

// EnsureProjectDir creates the project state directory if needed and
// returns it.
func EnsureProjectDir(projectID string) (string, error) {
	dir, err := ProjectDir(projectID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// loadJSON decodes the named file in dir into v. Missing files are silent;
// unreadable or corrupt files log a warning. Either way v is left as the
// caller initialized it and ok reports whether a decode happened.
func loadJSON(dir, name string, v any) (ok bool) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("unreadable state file", "path", path, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("corrupt state file, starting fresh", "path", path, "err", err)
		return false
	}
	return true
}

// saveJSON writes v as indented JSON to the named file in dir, creating the
// directory if needed.
func saveJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}

// Package envfile discovers dotenv files near the project and loads the
// variables they define.
package envfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// File is one discovered dotenv file.
type File struct {
	// Path is the absolute path to the file.
	Path string
	// DisplayName is what the picker shows, e.g. ".env.local" or
	// ".env (root)".
	DisplayName string
	// FromRoot marks files found at the monorepo root rather than next to
	// the current package.
	FromRoot bool
}

// List groups discovered files by where they were found.
type List struct {
	PackageFiles []File
	RootFiles    []File
}

// All returns package files followed by root files, the order the picker
// presents them in.
func (l List) All() []File {
	out := make([]File, 0, len(l.PackageFiles)+len(l.RootFiles))
	out = append(out, l.PackageFiles...)
	out = append(out, l.RootFiles...)
	return out
}

// MergeOrder returns root files before package files so that package-level
// variables override root-level ones when merged in order.
func (l List) MergeOrder() []File {
	out := make([]File, 0, len(l.PackageFiles)+len(l.RootFiles))
	out = append(out, l.RootFiles...)
	out = append(out, l.PackageFiles...)
	return out
}

// Scan finds dotenv files in pkgDir and, when inside a monorepo, at
// monorepoRoot as well. monorepoRoot may be empty or equal to pkgDir, in
// which case only the package directory is scanned.
func Scan(pkgDir, monorepoRoot string) List {
	list := List{PackageFiles: scanDir(pkgDir, false)}
	if monorepoRoot != "" && monorepoRoot != pkgDir {
		list.RootFiles = scanDir(monorepoRoot, true)
	}
	return list
}

func scanDir(dir string, fromRoot bool) []File {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !isEnvFile(entry.Name()) {
			continue
		}
		display := entry.Name()
		if fromRoot {
			display += " (root)"
		}
		files = append(files, File{
			Path:        filepath.Join(dir, entry.Name()),
			DisplayName: display,
			FromRoot:    fromRoot,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].DisplayName < files[j].DisplayName
	})
	return files
}

// isEnvFile accepts .env and any .env.* variant, but not templates like
// .env.example or editor leftovers.
func isEnvFile(name string) bool {
	if name == ".env" {
		return true
	}
	if !strings.HasPrefix(name, ".env.") {
		return false
	}
	switch strings.TrimPrefix(name, ".env.") {
	case "example", "sample", "template":
		return false
	}
	return true
}

// LoadAll reads the given dotenv files in order and merges their variables,
// later files overriding earlier ones. Unreadable files are logged and
// skipped.
func LoadAll(paths []string) map[string]string {
	merged := make(map[string]string)
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			log.Warn("skipping unreadable env file", "path", path, "err", err)
			continue
		}
		for k, v := range vars {
			merged[k] = v
		}
	}
	return merged
}

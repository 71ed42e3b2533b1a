// Package workspace discovers monorepo member packages from workspace globs.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/nrun-sh/nrun/internal/manifest"
)

// Package is one workspace member discovered inside a monorepo.
type Package struct {
	// Name from its package.json, or the directory name as fallback.
	Name string
	// RelPath is the slash-separated path relative to the monorepo root.
	RelPath string
	// Scripts declared in the member's package.json.
	Scripts map[string]string
}

// Scan reads workspace glob patterns from the root manifest or
// pnpm-workspace.yaml and returns the member packages that contain a
// package.json, sorted by relative path.
func Scan(root string) []Package {
	patterns := readPatterns(root)
	if len(patterns) == 0 {
		return nil
	}

	var packages []Package
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		for _, dir := range expandPattern(root, pattern) {
			if !fileExists(filepath.Join(dir, "package.json")) {
				continue
			}
			rel, err := filepath.Rel(root, dir)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)
			if seen[rel] {
				continue
			}
			seen[rel] = true

			pkg := manifest.Load(dir)
			name := filepath.Base(dir)
			var scripts map[string]string
			if pkg != nil {
				if pkg.Name != "" {
					name = pkg.Name
				}
				scripts = pkg.Scripts
			}

			packages = append(packages, Package{Name: name, RelPath: rel, Scripts: scripts})
		}
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].RelPath < packages[j].RelPath
	})
	return packages
}

// readPatterns prefers the manifest's workspaces field, falling back to
// pnpm-workspace.yaml.
func readPatterns(root string) []string {
	if pkg := manifest.Load(root); pkg.HasWorkspaces() {
		return pkg.WorkspaceGlobs
	}
	return pnpmPatterns(root)
}

func pnpmPatterns(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err != nil {
		return nil
	}
	var doc struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Warn("unparseable pnpm-workspace.yaml", "root", root, "err", err)
		return nil
	}
	return doc.Packages
}

// expandPattern walks the tree under root, bounded by the pattern's segment
// count, collecting directories whose relative path matches the glob.
// Hidden directories and node_modules are never descended into.
func expandPattern(root, pattern string) []string {
	if !doublestar.ValidatePattern(pattern) {
		log.Warn("invalid workspace glob", "pattern", pattern)
		return nil
	}

	maxDepth := len(strings.Split(pattern, "/"))
	if strings.Contains(pattern, "**") {
		// ** can span any number of segments; fall back to a deeper bound.
		maxDepth = 16
	}

	var results []string
	collectMatches(root, root, pattern, 1, maxDepth, &results)
	return results
}

func collectMatches(root, current, pattern string, depth, maxDepth int, results *[]string) {
	if depth > maxDepth {
		return
	}

	entries, err := os.ReadDir(current)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == "node_modules" {
			continue
		}

		path := filepath.Join(current, name)
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); ok {
			*results = append(*results, path)
		}

		if depth < maxDepth {
			collectMatches(root, path, pattern, depth+1, maxDepth, results)
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

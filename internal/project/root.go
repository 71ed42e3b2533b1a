// Package project locates the project root and derives its stable identity.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nrun-sh/nrun/internal/manifest"
)

// ErrNoManifest means no package.json was found in the working directory or
// any of its parents.
var ErrNoManifest = errors.New("no package.json found in this directory or any parent")

// Root describes the discovered project layout.
type Root struct {
	// NearestPkg is the directory containing the nearest package.json.
	NearestPkg string
	// MonorepoRoot is the workspace root above (or equal to) NearestPkg.
	// Empty when the project is not part of a monorepo.
	MonorepoRoot string
}

// ConfigRoot is the directory that scopes persisted state: the monorepo root
// when inside one, otherwise the nearest package directory.
func (r Root) ConfigRoot() string {
	if r.MonorepoRoot != "" {
		return r.MonorepoRoot
	}
	return r.NearestPkg
}

// FindRoot walks upward from cwd in two phases: first to the nearest
// directory containing package.json, then further up looking for a monorepo
// root (a manifest with a workspaces field, or a pnpm-workspace.yaml).
// The nearest directory may itself be the monorepo root.
func FindRoot(cwd string) (Root, error) {
	nearest := ""
	for dir := cwd; ; {
		if fileExists(filepath.Join(dir, "package.json")) {
			nearest = dir
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Root{}, ErrNoManifest
		}
		dir = parent
	}

	root := Root{NearestPkg: nearest}
	if isMonorepoRoot(nearest) {
		root.MonorepoRoot = nearest
		return root, nil
	}

	for dir := filepath.Dir(nearest); ; {
		if isMonorepoRoot(dir) {
			root.MonorepoRoot = dir
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return root, nil
}

func isMonorepoRoot(dir string) bool {
	if fileExists(filepath.Join(dir, "pnpm-workspace.yaml")) {
		return true
	}
	return manifest.Load(dir).HasWorkspaces()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

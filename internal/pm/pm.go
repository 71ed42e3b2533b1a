// Package pm detects which JavaScript package manager a project uses and
// knows how each one invokes a script.
package pm

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nrun-sh/nrun/internal/manifest"
)

// PackageManager identifies one of the supported script runners.
type PackageManager int

const (
	Npm PackageManager = iota
	Yarn
	Pnpm
	Bun
)

func (p PackageManager) String() string {
	switch p {
	case Bun:
		return "bun"
	case Pnpm:
		return "pnpm"
	case Yarn:
		return "yarn"
	default:
		return "npm"
	}
}

// CommandName is the executable to invoke.
func (p PackageManager) CommandName() string {
	return p.String()
}

// RunArgs are the arguments that make the manager run the named script.
// Yarn accepts the script name directly; the others need the run subcommand.
func (p PackageManager) RunArgs(script string) []string {
	if p == Yarn {
		return []string{script}
	}
	return []string{"run", script}
}

// Lockfiles checked in priority order. Bun wins over pnpm, pnpm over yarn,
// yarn over npm, matching how mixed checkouts usually got that way.
var lockfiles = []struct {
	name string
	pm   PackageManager
}{
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"pnpm-lock.yaml", Pnpm},
	{"yarn.lock", Yarn},
	{"package-lock.json", Npm},
}

// Detect determines the package manager for dir: lockfiles first, then the
// manifest's packageManager field, defaulting to npm.
func Detect(dir string) PackageManager {
	for _, lf := range lockfiles {
		if fileExists(filepath.Join(dir, lf.name)) {
			return lf.pm
		}
	}
	if pkg := manifest.Load(dir); pkg != nil {
		if p, ok := fromField(pkg.PackageManager); ok {
			return p
		}
	}
	return Npm
}

// fromField parses a packageManager value such as "pnpm@9.1.0".
func fromField(value string) (PackageManager, bool) {
	name, _, _ := strings.Cut(value, "@")
	switch name {
	case "bun":
		return Bun, true
	case "pnpm":
		return Pnpm, true
	case "yarn":
		return Yarn, true
	case "npm":
		return Npm, true
	}
	return Npm, false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

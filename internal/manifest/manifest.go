// Package manifest reads the subset of package.json that nrun cares about.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PackageJSON holds the parsed fields of a package.json file.
type PackageJSON struct {
	Name           string
	Scripts        map[string]string
	WorkspaceGlobs []string
	PackageManager string
}

// rawPackageJSON tolerates the loose shapes found in real manifests:
// script values that are not strings, and "workspaces" as either an array
// or an object with a "packages" key.
type rawPackageJSON struct {
	Name           string                     `json:"name"`
	Scripts        map[string]json.RawMessage `json:"scripts"`
	Workspaces     json.RawMessage            `json:"workspaces"`
	PackageManager string                     `json:"packageManager"`
}

// Load reads and parses package.json from dir. Returns nil when the file is
// missing or cannot be parsed; callers decide whether that is fatal.
func Load(dir string) *PackageJSON {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil
	}
	return parse(data)
}

func parse(data []byte) *PackageJSON {
	var raw rawPackageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	pkg := &PackageJSON{
		Name:           raw.Name,
		Scripts:        make(map[string]string, len(raw.Scripts)),
		PackageManager: raw.PackageManager,
	}

	for name, value := range raw.Scripts {
		var command string
		if err := json.Unmarshal(value, &command); err != nil {
			// Non-string script values exist in the wild; skip them.
			continue
		}
		pkg.Scripts[name] = command
	}

	pkg.WorkspaceGlobs = parseWorkspaces(raw.Workspaces)
	return pkg
}

// parseWorkspaces accepts both ["packages/*"] and {"packages": ["packages/*"]}.
func parseWorkspaces(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var globs []string
	if err := json.Unmarshal(raw, &globs); err == nil {
		return globs
	}

	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Packages
	}
	return nil
}

// HasWorkspaces reports whether the manifest declares a workspaces field.
func (p *PackageJSON) HasWorkspaces() bool {
	return p != nil && len(p.WorkspaceGlobs) > 0
}

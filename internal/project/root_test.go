package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestFindRootInCwd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"root"}`)

	root, err := FindRoot(dir)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root.NearestPkg != dir {
		t.Errorf("NearestPkg = %q, want %q", root.NearestPkg, dir)
	}
	if root.MonorepoRoot != "" {
		t.Errorf("MonorepoRoot = %q, want empty", root.MonorepoRoot)
	}
}

func TestFindRootInParent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"root"}`)
	deep := filepath.Join(dir, "src", "deep")
	mkdirAll(t, deep)

	root, err := FindRoot(deep)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root.NearestPkg != dir {
		t.Errorf("NearestPkg = %q, want %q", root.NearestPkg, dir)
	}
}

func TestFindRootNoManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "empty")
	mkdirAll(t, dir)

	_, err := FindRoot(dir)
	if !errors.Is(err, ErrNoManifest) {
		t.Errorf("err = %v, want ErrNoManifest", err)
	}
}

func TestFindRootDetectsWorkspacesField(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"mono","workspaces":["packages/*"]}`)

	pkgDir := filepath.Join(dir, "packages", "app")
	mkdirAll(t, pkgDir)
	writeFile(t, pkgDir, "package.json", `{"name":"app"}`)

	root, err := FindRoot(pkgDir)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root.NearestPkg != pkgDir {
		t.Errorf("NearestPkg = %q, want %q", root.NearestPkg, pkgDir)
	}
	if root.MonorepoRoot != dir {
		t.Errorf("MonorepoRoot = %q, want %q", root.MonorepoRoot, dir)
	}
}

func TestFindRootDetectsPnpmWorkspace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"mono"}`)
	writeFile(t, dir, "pnpm-workspace.yaml", "packages:\n  - 'packages/*'\n")

	pkgDir := filepath.Join(dir, "packages", "lib")
	mkdirAll(t, pkgDir)
	writeFile(t, pkgDir, "package.json", `{"name":"lib"}`)

	root, err := FindRoot(pkgDir)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root.MonorepoRoot != dir {
		t.Errorf("MonorepoRoot = %q, want %q", root.MonorepoRoot, dir)
	}
}

func TestFindRootNearestIsMonorepoRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"mono","workspaces":["packages/*"]}`)

	root, err := FindRoot(dir)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root.MonorepoRoot != dir {
		t.Errorf("MonorepoRoot = %q, want %q", root.MonorepoRoot, dir)
	}
	if root.ConfigRoot() != dir {
		t.Errorf("ConfigRoot() = %q, want %q", root.ConfigRoot(), dir)
	}
}

func TestFindRootPlainParentIsNotMonorepo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"parent"}`)

	child := filepath.Join(dir, "sub")
	mkdirAll(t, child)
	writeFile(t, child, "package.json", `{"name":"child"}`)

	root, err := FindRoot(child)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root.NearestPkg != child {
		t.Errorf("NearestPkg = %q, want %q", root.NearestPkg, child)
	}
	if root.MonorepoRoot != "" {
		t.Errorf("MonorepoRoot = %q, want empty", root.MonorepoRoot)
	}
}

func TestIDDeterministic(t *testing.T) {
	a := ID("/home/user/project")
	b := ID("/home/user/project")
	if a != b {
		t.Errorf("ID not deterministic: %q vs %q", a, b)
	}
}

func TestIDShapeAndUniqueness(t *testing.T) {
	id := ID("/home/user/project")
	if len(id) != 8 {
		t.Errorf("len(ID) = %d, want 8", len(id))
	}
	for _, c := range id {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Errorf("ID contains non-hex char %q", c)
		}
	}
	if ID("/home/user/project") == ID("/home/user/other") {
		t.Error("different paths produced the same ID")
	}
}

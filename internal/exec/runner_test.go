package exec

import (
	"errors"
	osexec "os/exec"
	"testing"

	"github.com/nrun-sh/nrun/internal/pm"
)

func TestRunScriptBuildsInvocation(t *testing.T) {
	mock := NewMockExecutor()
	env := map[string]string{"NODE_ENV": "production"}

	code := RunScript(mock, pm.Pnpm, "build", "/proj", env, []string{"--watch"})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	inv := mock.LastInvocation()
	if inv == nil {
		t.Fatal("nothing launched")
	}
	if inv.Name != "pnpm" {
		t.Errorf("Name = %q, want pnpm", inv.Name)
	}
	want := []string{"run", "build", "--watch"}
	if len(inv.Args) != len(want) {
		t.Fatalf("Args = %v, want %v", inv.Args, want)
	}
	for i := range want {
		if inv.Args[i] != want[i] {
			t.Errorf("Args = %v, want %v", inv.Args, want)
		}
	}
	if inv.Dir != "/proj" {
		t.Errorf("Dir = %q, want /proj", inv.Dir)
	}
	if inv.Env["NODE_ENV"] != "production" {
		t.Errorf("Env = %v", inv.Env)
	}
}

func TestRunScriptYarnOmitsRunSubcommand(t *testing.T) {
	mock := NewMockExecutor()
	RunScript(mock, pm.Yarn, "dev", "/proj", nil, nil)

	inv := mock.LastInvocation()
	if len(inv.Args) != 1 || inv.Args[0] != "dev" {
		t.Errorf("Args = %v, want [dev]", inv.Args)
	}
}

func TestRunScriptPropagatesExitCode(t *testing.T) {
	mock := NewMockExecutor()
	mock.AddResult("npm", []string{"run", "test"}, 3, nil)

	if code := RunScript(mock, pm.Npm, "test", "/proj", nil, nil); code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestRunScriptMissingManager(t *testing.T) {
	mock := NewMockExecutor()
	mock.DefaultResult = &MockResult{ExitCode: -1, Err: osexec.ErrNotFound}

	if code := RunScript(mock, pm.Bun, "dev", "/proj", nil, nil); code != 127 {
		t.Errorf("exit code = %d, want 127 for missing executable", code)
	}
}

func TestRunScriptOtherError(t *testing.T) {
	mock := NewMockExecutor()
	mock.DefaultResult = &MockResult{ExitCode: -1, Err: errors.New("boom")}

	if code := RunScript(mock, pm.Npm, "dev", "/proj", nil, nil); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

// Package exec runs package-manager scripts as foreground child processes.
package exec

import (
	"errors"
	"os"
	"os/exec"
)

// Invocation is one fully resolved child-process launch.
type Invocation struct {
	// Name is the executable, e.g. "pnpm".
	Name string
	// Args are the arguments after the executable.
	Args []string
	// Dir is the working directory for the child.
	Dir string
	// Env holds extra variables layered over the parent environment.
	Env map[string]string
}

// CommandExecutor defines an interface for launching script processes.
// This allows us to mock command execution in tests.
type CommandExecutor interface {
	// Run launches the invocation in the foreground, wiring the child to
	// the parent's stdio, and returns its exit code.
	Run(inv Invocation) (int, error)
}

// RealExecutor launches actual system commands.
type RealExecutor struct{}

// NewRealExecutor creates an executor that runs real commands.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Run executes the invocation with inherited stdio. The extra environment
// is appended after the parent environment so it takes precedence.
func (e *RealExecutor) Run(inv Invocation) (int, error) {
	cmd := exec.Command(inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	for k, v := range inv.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

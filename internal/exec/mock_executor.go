package exec

import (
	"strings"
)

// MockExecutor simulates script launches for testing.
type MockExecutor struct {
	// Results maps command keys ("name arg1 arg2") to configured outcomes.
	Results map[string]MockResult

	// DefaultResult is returned when no specific command matches.
	DefaultResult *MockResult

	// Launched tracks every invocation in order.
	Launched []Invocation
}

// MockResult is the configured outcome for one command key.
type MockResult struct {
	ExitCode int
	Err      error
}

// NewMockExecutor creates a new mock executor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{Results: make(map[string]MockResult)}
}

// Run records the invocation and returns the configured result. Unmatched
// commands succeed with exit code 0.
func (m *MockExecutor) Run(inv Invocation) (int, error) {
	m.Launched = append(m.Launched, inv)

	key := commandKey(inv.Name, inv.Args)
	if result, ok := m.Results[key]; ok {
		return result.ExitCode, result.Err
	}
	if m.DefaultResult != nil {
		return m.DefaultResult.ExitCode, m.DefaultResult.Err
	}
	return 0, nil
}

// AddResult registers an outcome for a command.
func (m *MockExecutor) AddResult(name string, args []string, exitCode int, err error) {
	m.Results[commandKey(name, args)] = MockResult{ExitCode: exitCode, Err: err}
}

// LastInvocation returns the most recent launch, or nil when none happened.
func (m *MockExecutor) LastInvocation() *Invocation {
	if len(m.Launched) == 0 {
		return nil
	}
	return &m.Launched[len(m.Launched)-1]
}

func commandKey(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

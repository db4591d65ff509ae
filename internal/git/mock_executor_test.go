package git

import (
	"context"
	"strings"
	"sync"
)

// mockCall records a single invocation of the mock executor
type mockCall struct {
	Dir  string
	Name string
	Args []string
}

func (c mockCall) String() string {
	return c.Name + " " + strings.Join(c.Args, " ")
}

// mockExecutor records calls and fails on selected git subcommands
type mockExecutor struct {
	mu      sync.Mutex
	calls   []mockCall
	failOn  map[string]error
	outputs map[string]string
}

func newMockExecutor() *mockExecutor {
	return &mockExecutor{
		failOn:  make(map[string]error),
		outputs: make(map[string]string),
	}
}

func (m *mockExecutor) Execute(ctx context.Context, dir, name string, args ...string) error {
	_, err := m.ExecuteWithOutput(ctx, dir, name, args...)
	return err
}

func (m *mockExecutor) ExecuteWithOutput(ctx context.Context, dir, name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, mockCall{Dir: dir, Name: name, Args: append([]string(nil), args...)})

	if err := ctx.Err(); err != nil {
		return "", err
	}

	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	if err, ok := m.failOn[sub]; ok {
		return "", err
	}
	return m.outputs[sub], nil
}

func (m *mockExecutor) commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		out = append(out, c.String())
	}
	return out
}

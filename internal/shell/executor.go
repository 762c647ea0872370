package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

var ErrNotFound = errors.New("not found")

// IOBindings are the streams handed to an external command. A nil stream is
// inherited from the process.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs an external command to completion. The shell is synchronous:
// a command that never exits blocks the loop, there is no timeout.
type Executor interface {
	Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error)
}

// DefaultExecutor resolves names through LookupFunc and runs them with
// os/exec, reporting the child's exit code.
type DefaultExecutor struct {
	LookupFunc func(name string) (string, bool)
}

func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, bind IOBindings) (int, error) {
	path, ok := e.LookupFunc(name)
	if !ok {
		return 0, ErrNotFound
	}

	cmd := exec.CommandContext(ctx, path, args...)
	// The child sees the bare name it was invoked with, not the resolved path.
	cmd.Args = append([]string{name}, args...)
	cmd.Stdin = bind.Stdin
	cmd.Stdout = bind.Stdout
	cmd.Stderr = bind.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// A nonzero exit is a normal outcome, not a launch failure.
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}

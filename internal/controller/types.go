package controller

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// #region outcome
// Outcome is the result of one replacement attempt.
type Outcome int

const (
	// KeepRunning means the trigger did not fire or a stage failed; the loop
	// continues with the current process image.
	KeepRunning Outcome = iota

	// Replaced means the process image was handed over. Only observable with
	// a Replacer that returns instead of exec'ing (simulation); the real
	// replacer never returns on success.
	Replaced
)

func (o Outcome) String() string {
	switch o {
	case KeepRunning:
		return "keep_running"
	case Replaced:
		return "replaced"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// #endregion outcome

// #region collaborators
// Builder runs the external rebuild command and waits for it.
type Builder interface {
	Build(ctx context.Context) error
}

// Replacer swaps the process image for the executable at path. A successful
// call never returns; an error return is fatal to the caller.
type Replacer interface {
	Replace(path string) error
}

// CommandBuilder invokes a single opaque command with no arguments from the
// current working directory. Success is exit status zero.
type CommandBuilder struct {
	Command string
}

func (b CommandBuilder) Build(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, b.Command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build command %q: %w", b.Command, err)
	}
	return nil
}

// ExecReplacer replaces the process image via execve, passing only the
// target's own path.
type ExecReplacer struct{}

func (ExecReplacer) Replace(path string) error {
	return unix.Exec(path, []string{path}, os.Environ())
}

// #endregion collaborators

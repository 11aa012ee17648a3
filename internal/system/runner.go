package system

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Command describes one external invocation.
type Command struct {
	// Name is the binary to run, resolved via PATH.
	Name string

	// Args are the command arguments.
	Args []string

	// Env holds extra KEY=VALUE pairs appended to the inherited
	// environment (e.g. DEBIAN_FRONTEND=noninteractive).
	Env []string

	// Stdin, when non-empty, is fed to the command's standard input.
	Stdin string
}

// String renders the command for log output.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands. Implementations must block until
// the command completes; there are no timeouts or retries at this layer.
type Runner interface {
	// Run executes the command and returns an error including the
	// command's combined output if it exits non-zero.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and returns its trimmed stdout.
	Output(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner runs commands on the local host via os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	log.Printf("Running: %s", cmd)

	c := r.build(ctx, cmd)
	output, err := c.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", cmd, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, cmd Command) (string, error) {
	c := r.build(ctx, cmd)
	output, err := c.Output()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", cmd, err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (r *ExecRunner) build(ctx context.Context, cmd Command) *exec.Cmd {
	// #nosec G204 - command names and arguments come from trusted
	// provisioning definitions, not user input
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if len(cmd.Env) > 0 {
		c.Env = append(c.Environ(), cmd.Env...)
	}
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}
	return c
}

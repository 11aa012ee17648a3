// Package apt wraps the Debian package manager behind a narrow
// capability interface. All operations are non-interactive: apt-get
// runs with the -y flag and DEBIAN_FRONTEND=noninteractive, and
// installer questions are answered up front via debconf pre-seeding.
package apt

import (
	"context"

	"github.com/lempctl/lempctl/internal/system"
)

// nonInteractiveEnv suppresses every dpkg/apt prompt.
var nonInteractiveEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

// Manager drives apt-get and debconf on the local host.
type Manager struct {
	runner system.Runner
}

// NewManager returns a Manager that executes through the given runner.
func NewManager(runner system.Runner) *Manager {
	return &Manager{runner: runner}
}

// Update refreshes the package index. Must succeed before any install.
func (m *Manager) Update(ctx context.Context) error {
	return m.runner.Run(ctx, system.Command{
		Name: "apt-get",
		Args: []string{"update"},
		Env:  nonInteractiveEnv,
	})
}

// Upgrade upgrades all installed packages without prompting.
func (m *Manager) Upgrade(ctx context.Context) error {
	return m.runner.Run(ctx, system.Command{
		Name: "apt-get",
		Args: []string{"upgrade", "-y"},
		Env:  nonInteractiveEnv,
	})
}

// Install installs the named packages in a single apt-get call.
func (m *Manager) Install(ctx context.Context, packages ...string) error {
	args := append([]string{"install", "-y"}, packages...)
	return m.runner.Run(ctx, system.Command{
		Name: "apt-get",
		Args: args,
		Env:  nonInteractiveEnv,
	})
}

// Preseed feeds debconf selections to debconf-set-selections so a
// later package install sees its interactive questions already
// answered.
func (m *Manager) Preseed(ctx context.Context, selections string) error {
	return m.runner.Run(ctx, system.Command{
		Name:  "debconf-set-selections",
		Stdin: selections,
	})
}

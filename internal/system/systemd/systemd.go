// Package systemd wraps service lifecycle management behind a narrow
// capability interface over systemctl.
package systemd

import (
	"context"

	"github.com/lempctl/lempctl/internal/system"
)

// Manager controls named services via systemctl.
type Manager struct {
	runner system.Runner
}

// NewManager returns a Manager that executes through the given runner.
func NewManager(runner system.Runner) *Manager {
	return &Manager{runner: runner}
}

// Start brings the service up if it is not already running.
func (m *Manager) Start(ctx context.Context, service string) error {
	return m.systemctl(ctx, "start", service)
}

// Restart restarts the service unconditionally so new configuration
// takes effect even if the service was already running.
func (m *Manager) Restart(ctx context.Context, service string) error {
	return m.systemctl(ctx, "restart", service)
}

// Enable marks the service to start at boot.
func (m *Manager) Enable(ctx context.Context, service string) error {
	return m.systemctl(ctx, "enable", service)
}

func (m *Manager) systemctl(ctx context.Context, verb, service string) error {
	return m.runner.Run(ctx, system.Command{
		Name: "systemctl",
		Args: []string{verb, service},
	})
}

package handlers

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lempctl/lempctl/internal/system"
	"github.com/lempctl/lempctl/internal/util/prerequisites"
)

// quietDoctorState stubs the host-state probes so tests do not touch
// the real filesystem or run systemctl.
func quietDoctorState() {
	statFile = func(string) (os.FileInfo, error) { return nil, fs.ErrNotExist }
	commandOutput = func(context.Context, system.Command) (string, error) {
		return "", errors.New("not available")
	}
}

func TestDoctor_AllChecksPass(t *testing.T) {
	saveAndRestoreFactories(t)
	quietDoctorState()

	requireRoot = func() error { return nil }
	checkAllTools = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{
				{Tool: prerequisites.Tool{Name: "apt-get", Required: true}, Found: true, Path: "/usr/bin/apt-get"},
				{Tool: prerequisites.Tool{Name: "systemctl", Required: true}, Found: true, Path: "/usr/bin/systemctl"},
			},
		}
	}

	assert.NoError(t, Doctor(context.Background()))
}

func TestDoctor_MissingRequiredTool(t *testing.T) {
	saveAndRestoreFactories(t)
	quietDoctorState()

	requireRoot = func() error { return nil }
	missing := prerequisites.Tool{Name: "debconf-set-selections", Required: true}
	checkAllTools = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{{Tool: missing, Found: false}},
			Missing: []prerequisites.Tool{missing},
		}
	}

	err := Doctor(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debconf-set-selections")
}

func TestDoctor_NotRoot(t *testing.T) {
	saveAndRestoreFactories(t)
	quietDoctorState()

	requireRoot = func() error { return prerequisites.ErrNotRoot }
	checkAllTools = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{}
	}

	err := Doctor(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, prerequisites.ErrNotRoot))
}

func TestSocketNote(t *testing.T) {
	assert.Contains(t, socketNote(nil), "mysqld.sock")
	assert.Contains(t, socketNote(fs.ErrNotExist), "absent")
}

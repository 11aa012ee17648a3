package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lempctl/lempctl/internal/config"
	"github.com/lempctl/lempctl/internal/config/wizard"
)

func TestInit_WritesConfig(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			PHPVersion: "8.3",
			WebRoot:    "/srv/www",
			ServerName: "_",
		}, nil
	}

	var written *config.Config
	var writtenPath string
	writeConfig = func(cfg *config.Config, path string) error {
		written = cfg
		writtenPath = path
		return nil
	}

	require.NoError(t, Init(context.Background(), "lempctl.yaml"))
	require.NotNil(t, written)
	assert.Equal(t, "8.3", written.PHPVersion)
	assert.Equal(t, "/srv/www", written.WebRoot)
	assert.Equal(t, "lempctl.yaml", writtenPath)
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}
	writeConfig = func(*config.Config, string) error {
		t.Fatal("writeConfig should not be called on cancel")
		return nil
	}

	err := Init(context.Background(), "lempctl.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_InvalidWizardResult(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{PHPVersion: "not-a-version", WebRoot: "/srv/www", ServerName: "_"}, nil
	}
	writeConfig = func(*config.Config, string) error {
		t.Fatal("writeConfig should not be called for invalid config")
		return nil
	}

	err := Init(context.Background(), "lempctl.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestInit_WriteFailure(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return true }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			PHPVersion: config.DefaultPHPVersion,
			WebRoot:    config.DefaultWebRoot,
			ServerName: config.DefaultServerName,
		}, nil
	}
	writeConfig = func(*config.Config, string) error {
		return errors.New("permission denied")
	}

	err := Init(context.Background(), "lempctl.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}

// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lempctl/lempctl/internal/config"
	"github.com/lempctl/lempctl/internal/mysql"
	"github.com/lempctl/lempctl/internal/nginx"
	"github.com/lempctl/lempctl/internal/provision"
	"github.com/lempctl/lempctl/internal/system"
	"github.com/lempctl/lempctl/internal/system/apt"
	"github.com/lempctl/lempctl/internal/system/systemd"
)

// sequenceRunner matches provision.Provisioner for testing.
type sequenceRunner interface {
	Run(ctx context.Context) (*provision.Report, error)
}

// Factory function variables - can be replaced in tests for dependency
// injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// findConfigFile finds the default config file.
	findConfigFile = config.FindConfigFile

	// newProvisioner wires the real host collaborators.
	newProvisioner = func(cfg *config.Config) sequenceRunner {
		runner := system.NewExecRunner()
		return provision.New(
			cfg,
			apt.NewManager(runner),
			systemd.NewManager(runner),
			nginx.NewConfigurator(runner),
			mysql.OpenRootSession,
		)
	}

	// stdout is the operator-facing output stream.
	stdout io.Writer = os.Stdout
)

// Provision runs the full provisioning sequence and prints the final
// access report. When savePath is non-empty the credentials are also
// written to that file with mode 0600.
func Provision(ctx context.Context, configPath, savePath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	report, err := newProvisioner(cfg).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, report.Render(isInteractiveTTY()))

	if savePath != "" {
		if err := report.Save(savePath); err != nil {
			return err
		}
		log.Printf("Credentials saved to %s", savePath)
	}

	return nil
}

// loadConfig loads the provisioning configuration. If no path is
// given and no default config file exists, the built-in defaults are
// used, matching the original setup's edit-time constants.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			log.Printf("No config file found, using built-in defaults")
			return config.Default(), nil
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Using config: %s", configPath)
	return cfg, nil
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

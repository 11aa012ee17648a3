package commands

import (
	"github.com/spf13/cobra"

	"github.com/lempctl/lempctl/cmd/lempctl/handlers"
)

// Provision returns the command that runs the full provisioning
// sequence.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect lempctl.yaml)
//	--save-credentials: Write the generated credentials to a 0600 file
func Provision() *cobra.Command {
	var configPath string
	var credentialsPath string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Install and configure nginx, MySQL, PHP-FPM and phpMyAdmin",
		Long: `Provision the complete LEMP stack on this host.

The sequence refreshes and upgrades system packages, installs nginx,
MySQL, PHP-FPM and phpMyAdmin non-interactively, hardens the fresh
MySQL installation with a generated root password, writes and
validates the nginx site configuration, and restarts and enables all
services.

Must run as root. The run is one-shot and fail-fast: the first failing
step aborts everything, and re-running on an already-provisioned host
fails at the database hardening step.

Examples:
  # Provision using lempctl.yaml in the current directory, or built-in
  # defaults if no config file exists
  lempctl provision

  # Provision using a specific config file
  lempctl provision -c production.yaml

  # Keep a root-readable copy of the generated credentials
  lempctl provision --save-credentials /root/.lemp-credentials`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath, credentialsPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: lempctl.yaml)")
	cmd.Flags().StringVar(&credentialsPath, "save-credentials", "", "Write credentials to this file with mode 0600")

	return cmd
}

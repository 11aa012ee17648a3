package commands

import (
	"github.com/spf13/cobra"

	"github.com/lempctl/lempctl/cmd/lempctl/handlers"
)

// Doctor returns the command that checks whether this host is ready
// for provisioning.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that this host is ready for provisioning",
		Long: `Check provisioning prerequisites.

Verifies that the process runs as root, that the system management
tools the provisioner shells out to (apt-get, debconf-set-selections,
systemctl) are available, and reports relevant host state such as the
mysql socket.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context())
		},
	}
}

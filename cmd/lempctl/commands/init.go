package commands

import (
	"github.com/spf13/cobra"

	"github.com/lempctl/lempctl/cmd/lempctl/handlers"
)

// Init returns the command that runs the interactive configuration
// wizard. Only the wizard prompts; the provisioning run itself is
// fully non-interactive.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a provisioning configuration interactively",
		Long: `Create a lempctl configuration file.

The wizard asks for the PHP version, web root and admin panel options,
then writes a commented YAML file. Run 'lempctl provision' afterwards.

Examples:
  # Create lempctl.yaml in the current directory
  lempctl init

  # Write the config somewhere else
  lempctl init -o /etc/lempctl/production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "lempctl.yaml", "Path for the generated configuration file")

	return cmd
}

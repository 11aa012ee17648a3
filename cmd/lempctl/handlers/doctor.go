package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lempctl/lempctl/internal/config"
	"github.com/lempctl/lempctl/internal/system"
	"github.com/lempctl/lempctl/internal/util/prerequisites"
)

// Factory function variables for doctor - can be replaced in tests.
var (
	// requireRoot checks the privilege precondition.
	requireRoot = prerequisites.RequireRoot

	// checkAllTools checks required and optional host tools.
	checkAllTools = prerequisites.CheckAll

	// statFile checks host paths (the mysql socket).
	statFile = os.Stat

	// commandOutput captures a command's stdout.
	commandOutput = func(ctx context.Context, cmd system.Command) (string, error) {
		return system.NewExecRunner().Output(ctx, cmd)
	}
)

// Doctor reports whether this host is ready for provisioning: the
// privilege precondition, the availability of the system tools the
// sequence shells out to, and relevant host state.
func Doctor(ctx context.Context) error {
	fmt.Println()
	fmt.Println("  lempctl doctor")
	fmt.Println("  ==============")
	fmt.Println()

	rootErr := requireRoot()
	printRow("running as root", rootErr == nil, "")
	if rootErr != nil {
		fmt.Println()
		fmt.Println("  Re-run with sudo; provisioning refuses to start without root.")
	}

	fmt.Println()
	fmt.Println("  Host tools")
	fmt.Println("  ----------")

	results := checkAllTools()
	for _, r := range results.Results {
		extra := r.Path
		if !r.Found && !r.Tool.Required {
			extra = "optional; installed by provisioning"
		}
		printRow(r.Tool.Name, r.Found, extra)
	}

	fmt.Println()
	fmt.Println("  Host state")
	fmt.Println("  ----------")

	_, sockErr := statFile(config.DefaultMySQLSocket)
	printRow("mysql socket", sockErr == nil, socketNote(sockErr))

	if version, err := commandOutput(ctx, system.Command{
		Name: "systemctl",
		Args: []string{"--version"},
	}); err == nil {
		if line, _, _ := strings.Cut(version, "\n"); line != "" {
			fmt.Printf("      %s\n", line)
		}
	}
	fmt.Println()

	if err := results.Error(); err != nil {
		return err
	}
	return rootErr
}

// socketNote explains the socket row; an absent socket is normal on a
// host that has not been provisioned yet.
func socketNote(sockErr error) string {
	if sockErr == nil {
		return config.DefaultMySQLSocket
	}
	return "absent; created when the mysql service starts"
}

func printRow(name string, ok bool, extra string) {
	indicator := "✅"
	if !ok {
		indicator = "❌"
	}

	if extra != "" {
		fmt.Printf("  %s  %-24s %s\n", indicator, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", indicator, name)
	}
}

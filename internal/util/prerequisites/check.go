// Package prerequisites verifies the host is fit for provisioning:
// the process must run as root and the system management tools the
// provisioner shells out to must be present in PATH.
package prerequisites

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotRoot is returned when the process lacks the administrative
// identity. Callers map it to a distinct exit code.
var ErrNotRoot = errors.New("must be run as root")

// euid reports the effective user ID. Replaced in tests.
var euid = os.Geteuid

// RequireRoot verifies the process runs with an effective UID of zero.
// This is the only mutation gate: nothing may touch the system before
// it passes.
func RequireRoot() error {
	if id := euid(); id != 0 {
		return fmt.Errorf("%w (effective uid %d); re-run with sudo", ErrNotRoot, id)
	}
	return nil
}

// Tool represents a host management tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string
}

// DefaultTools returns the set of tools the provisioning sequence
// shells out to on a Debian-family host.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "apt-get",
			Required:    true,
			Description: "Installs and upgrades the nginx, MySQL, PHP and phpMyAdmin packages",
		},
		{
			Name:        "debconf-set-selections",
			Required:    true,
			Description: "Pre-seeds installer questions so phpMyAdmin does not pull in Apache",
		},
		{
			Name:        "systemctl",
			Required:    true,
			Description: "Starts, restarts and enables the provisioned services",
		},
	}
}

// OptionalTools returns tools that are useful but not required before
// provisioning starts; nginx and mysql are installed by the run itself.
func OptionalTools() []Tool {
	return []Tool{
		{
			Name:        "nginx",
			Required:    false,
			Description: "Present after a prior run; used for config validation",
		},
		{
			Name:        "mysql",
			Required:    false,
			Description: "Present after a prior run; useful for manual administration",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, tool.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks the default required tools.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// CheckAll checks all tools (default + optional).
func CheckAll() *CheckResults {
	defaults := DefaultTools()
	optional := OptionalTools()
	all := make([]Tool, 0, len(defaults)+len(optional))
	all = append(all, defaults...)
	all = append(all, optional...)
	return Check(all)
}

package wizard

import (
	"context"
	"fmt"
	"path"
	"regexp"

	"github.com/charmbracelet/huh"

	"github.com/lempctl/lempctl/internal/config"
)

// phpVersionRegex matches a major.minor version like "8.2".
var phpVersionRegex = regexp.MustCompile(`^\d+\.\d+$`)

// phpVersionOptions are the PHP releases currently packaged for
// Debian-family hosts.
var phpVersionOptions = []string{"8.1", "8.2", "8.3", "8.4"}

// Result holds the answers from the interactive wizard.
type Result struct {
	PHPVersion     string
	WebRoot        string
	ServerName     string
	PanelBasicAuth bool
}

// RunWizard prompts for the provisioning tunables. The context is used
// for cancellation support (e.g. Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{
		PHPVersion: config.DefaultPHPVersion,
		WebRoot:    config.DefaultWebRoot,
		ServerName: config.DefaultServerName,
	}

	if err := runStackGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("stack selection: %w", err)
	}

	if err := runPanelGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("panel options: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard answers into a full Config.
func (r *Result) ToConfig() *config.Config {
	cfg := config.Default()
	cfg.PHPVersion = r.PHPVersion
	cfg.WebRoot = r.WebRoot
	cfg.ServerName = r.ServerName
	cfg.PanelBasicAuth = r.PanelBasicAuth
	return cfg
}

// runStackGroup prompts for PHP version, web root and server name.
func runStackGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("PHP Version").
				Description("Selects the PHP-FPM package set and socket path").
				Options(huh.NewOptions(phpVersionOptions...)...).
				Value(&result.PHPVersion).
				Validate(validatePHPVersion),
			huh.NewInput().
				Title("Web Root").
				Description("Absolute directory nginx serves as the document root").
				Placeholder(config.DefaultWebRoot).
				Value(&result.WebRoot).
				Validate(validateWebRoot),
			huh.NewInput().
				Title("Server Name").
				Description("nginx server_name; keep \"_\" to match any host").
				Placeholder(config.DefaultServerName).
				Value(&result.ServerName),
		).Title("Web Stack"),
	).RunWithContext(ctx)
}

// runPanelGroup prompts for admin panel protection.
func runPanelGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Protect phpMyAdmin with basic auth?").
				Description("Adds a second generated credential in front of the panel").
				Value(&result.PanelBasicAuth),
		).Title("Admin Panel"),
	).RunWithContext(ctx)
}

func validatePHPVersion(value string) error {
	if !phpVersionRegex.MatchString(value) {
		return fmt.Errorf("use a major.minor version like %s", config.DefaultPHPVersion)
	}
	return nil
}

func validateWebRoot(value string) error {
	if !path.IsAbs(value) {
		return fmt.Errorf("web root must be an absolute path")
	}
	return nil
}

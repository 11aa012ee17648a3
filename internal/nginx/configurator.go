package nginx

import (
	"context"
	"fmt"
	"os"

	"github.com/lempctl/lempctl/internal/config"
	"github.com/lempctl/lempctl/internal/system"
)

// Configurator writes the site configuration and runs the proxy's
// offline syntax validator.
type Configurator struct {
	runner system.Runner

	// writeFile is os.WriteFile, replaceable in tests.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewConfigurator returns a Configurator executing through the given
// runner.
func NewConfigurator(runner system.Runner) *Configurator {
	return &Configurator{
		runner:    runner,
		writeFile: os.WriteFile,
	}
}

// WriteSiteConfig renders the site config and fully overwrites the
// configured site file. No merge with prior content is attempted.
func (c *Configurator) WriteSiteConfig(cfg *config.Config) error {
	content := SiteConfig(cfg)
	if err := c.writeFile(cfg.SiteConfigPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write site config %s: %w", cfg.SiteConfigPath, err)
	}
	return nil
}

// Validate runs nginx's built-in configuration syntax check. It must
// pass before the service is reloaded or restarted.
func (c *Configurator) Validate(ctx context.Context) error {
	return c.runner.Run(ctx, system.Command{
		Name: "nginx",
		Args: []string{"-t"},
	})
}

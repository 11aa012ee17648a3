package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lempctl/lempctl/internal/config"
)

// WriteConfig writes the config to a YAML file with a descriptive
// header.
func WriteConfig(cfg *config.Config, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# lempctl provisioning configuration
# Generated by 'lempctl init' on %s
#
# Run 'lempctl provision -c %s' to provision the host.
# All fields are optional; unset fields use the built-in defaults.
`, time.Now().Format("2006-01-02"), outputPath)
}

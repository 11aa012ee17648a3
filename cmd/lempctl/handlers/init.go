package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/lempctl/lempctl/internal/config"
	"github.com/lempctl/lempctl/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = wizard.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("lempctl - LEMP stack provisioning")
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("This wizard creates a provisioning configuration with sensible defaults.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next
// steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Stack Summary")
	fmt.Println("-------------")
	fmt.Printf("  PHP version: %s\n", cfg.PHPVersion)
	fmt.Printf("  Web root:    %s\n", cfg.WebRoot)
	fmt.Printf("  Server name: %s\n", cfg.ServerName)
	fmt.Printf("  Admin panel: %s", cfg.PanelPath)
	if cfg.PanelBasicAuth {
		fmt.Print(" (basic auth)")
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("Next step:")
	fmt.Printf("  sudo lempctl provision -c %s\n", outputPath)
	fmt.Println()
}

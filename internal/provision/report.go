package provision

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report holds the operator-facing access information produced by a
// successful run. The admin password exists nowhere else unless the
// operator asks for it to be saved.
type Report struct {
	PanelURL      string
	AdminUser     string
	AdminPassword string

	// Set only when panel basic auth is enabled.
	PanelAuthUser     string
	PanelAuthPassword string
}

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#22c55e"))

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6b7280"))
)

// Render returns the final report text. When styled is false (e.g.
// stdout is not a terminal) the output is plain text.
func (r *Report) Render(styled bool) string {
	title := func(s string) string { return s }
	label := func(s string) string { return s }
	if styled {
		title = func(s string) string { return reportTitleStyle.Render(s) }
		label = func(s string) string { return reportLabelStyle.Render(s) }
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title("LEMP stack provisioned") + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", label("Admin panel:"), r.PanelURL)
	fmt.Fprintf(&b, "  %s %s\n", label("MySQL user: "), r.AdminUser)
	fmt.Fprintf(&b, "  %s %s\n", label("Password:   "), r.AdminPassword)

	if r.PanelAuthUser != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n", label("Panel auth user:    "), r.PanelAuthUser)
		fmt.Fprintf(&b, "  %s %s\n", label("Panel auth password:"), r.PanelAuthPassword)
	}

	b.WriteString("\n")
	b.WriteString("Store the password now; it is not recoverable later.\n")
	return b.String()
}

// Save writes the report to a permission-restricted file for operators
// who prefer a durable record over the print-only default.
func (r *Report) Save(path string) error {
	if err := os.WriteFile(path, []byte(r.Render(false)), 0600); err != nil {
		return fmt.Errorf("failed to save credentials to %s: %w", path, err)
	}
	return nil
}

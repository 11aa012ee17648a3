package nginx

import (
	"fmt"
	"strings"

	"github.com/lempctl/lempctl/internal/config"
)

// SiteConfig renders the default site configuration for the given
// provisioning config.
//
// The generated vhost listens on port 80 on both IPv4 and IPv6 as the
// default server, serves the configured web root preferring index.php,
// forwards *.php requests to the version-specific PHP-FPM socket, and
// denies access to .ht* files so legacy access-control files never
// leak.
func SiteConfig(cfg *config.Config) string {
	var b strings.Builder

	b.WriteString("# Managed by lempctl. Manual edits are overwritten on the next run.\n")
	b.WriteString("server {\n")
	b.WriteString("\tlisten 80 default_server;\n")
	b.WriteString("\tlisten [::]:80 default_server;\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "\troot %s;\n", cfg.WebRoot)
	b.WriteString("\tindex index.php index.html index.htm;\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "\tserver_name %s;\n", cfg.ServerName)
	b.WriteString("\n")
	b.WriteString("\tlocation / {\n")
	b.WriteString("\t\ttry_files $uri $uri/ =404;\n")
	b.WriteString("\t}\n")

	if cfg.PanelBasicAuth {
		b.WriteString("\n")
		fmt.Fprintf(&b, "\tlocation ^~ %s {\n", cfg.PanelPath)
		b.WriteString("\t\tauth_basic \"Database administration\";\n")
		fmt.Fprintf(&b, "\t\tauth_basic_user_file %s;\n", config.HtpasswdPath)
		b.WriteString("\t\tindex index.php;\n")
		b.WriteString("\t\ttry_files $uri $uri/ =404;\n")
		b.WriteString("\n")
		b.WriteString("\t\tlocation ~ \\.php$ {\n")
		b.WriteString("\t\t\tinclude snippets/fastcgi-php.conf;\n")
		fmt.Fprintf(&b, "\t\t\tfastcgi_pass unix:%s;\n", cfg.FPMSocket())
		b.WriteString("\t\t}\n")
		b.WriteString("\t}\n")
	}

	b.WriteString("\n")
	b.WriteString("\tlocation ~ \\.php$ {\n")
	b.WriteString("\t\tinclude snippets/fastcgi-php.conf;\n")
	fmt.Fprintf(&b, "\t\tfastcgi_pass unix:%s;\n", cfg.FPMSocket())
	b.WriteString("\t}\n")
	b.WriteString("\n")
	b.WriteString("\tlocation ~ /\\.ht {\n")
	b.WriteString("\t\tdeny all;\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")

	return b.String()
}

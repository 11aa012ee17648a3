package config

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// phpVersionRegex validates a major.minor PHP version like "8.2".
var phpVersionRegex = regexp.MustCompile(`^\d+\.\d+$`)

// Config holds all tunables for a provisioning run.
type Config struct {
	// PHPVersion is the major.minor PHP release to install, e.g.
	// "8.2". It drives both the package set and the FPM socket path.
	PHPVersion string `yaml:"php_version" mapstructure:"php_version"`

	// WebRoot is the document root served by nginx.
	WebRoot string `yaml:"web_root" mapstructure:"web_root"`

	// ServerName is the nginx server_name directive value.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`

	// SiteConfigPath is where the generated nginx site config is
	// written.
	SiteConfigPath string `yaml:"site_config_path" mapstructure:"site_config_path"`

	// MySQLSocket is the unix socket used for the administrative
	// connection during hardening.
	MySQLSocket string `yaml:"mysql_socket" mapstructure:"mysql_socket"`

	// PanelPath is the URL path the admin panel is linked under.
	PanelPath string `yaml:"panel_path" mapstructure:"panel_path"`

	// PanelBasicAuth, when true, protects PanelPath with an extra
	// generated credential via nginx basic auth.
	PanelBasicAuth bool `yaml:"panel_basic_auth" mapstructure:"panel_basic_auth"`
}

// Default returns the built-in configuration matching the original
// edit-time constants.
func Default() *Config {
	return &Config{
		PHPVersion:     DefaultPHPVersion,
		WebRoot:        DefaultWebRoot,
		ServerName:     DefaultServerName,
		SiteConfigPath: DefaultSiteConfigPath,
		MySQLSocket:    DefaultMySQLSocket,
		PanelPath:      DefaultPanelPath,
	}
}

// applyDefaults fills zero-valued fields with the built-in defaults.
func (c *Config) applyDefaults() {
	def := Default()
	if c.PHPVersion == "" {
		c.PHPVersion = def.PHPVersion
	}
	if c.WebRoot == "" {
		c.WebRoot = def.WebRoot
	}
	if c.ServerName == "" {
		c.ServerName = def.ServerName
	}
	if c.SiteConfigPath == "" {
		c.SiteConfigPath = def.SiteConfigPath
	}
	if c.MySQLSocket == "" {
		c.MySQLSocket = def.MySQLSocket
	}
	if c.PanelPath == "" {
		c.PanelPath = def.PanelPath
	}
}

// Validate checks the configuration for values the provisioner cannot
// work with.
func (c *Config) Validate() error {
	if !phpVersionRegex.MatchString(c.PHPVersion) {
		return fmt.Errorf("php_version %q must be a major.minor version like %q", c.PHPVersion, DefaultPHPVersion)
	}
	if !path.IsAbs(c.WebRoot) {
		return fmt.Errorf("web_root %q must be an absolute path", c.WebRoot)
	}
	if !path.IsAbs(c.SiteConfigPath) {
		return fmt.Errorf("site_config_path %q must be an absolute path", c.SiteConfigPath)
	}
	if !path.IsAbs(c.MySQLSocket) {
		return fmt.Errorf("mysql_socket %q must be an absolute path", c.MySQLSocket)
	}
	if !strings.HasPrefix(c.PanelPath, "/") || c.PanelPath == "/" {
		return fmt.Errorf("panel_path %q must be a non-root absolute URL path", c.PanelPath)
	}
	return nil
}

// FPMSocket returns the PHP-FPM unix socket path for the configured
// PHP version. One socket per version, by convention of Debian's PHP
// packaging.
func (c *Config) FPMSocket() string {
	return fmt.Sprintf("/run/php/php%s-fpm.sock", c.PHPVersion)
}

// FPMService returns the PHP-FPM systemd unit name for the configured
// version.
func (c *Config) FPMService() string {
	return fmt.Sprintf("php%s-fpm", c.PHPVersion)
}

// PHPPackages returns the PHP package set for the configured version:
// the FPM process manager, its common extension modules, and the two
// version-independent shared packages.
func (c *Config) PHPPackages() []string {
	versioned := []string{"fpm", "mysql", "cli", "curl", "xml", "mbstring", "zip", "bcmath"}

	packages := make([]string, 0, len(versioned)+2)
	for _, ext := range versioned {
		packages = append(packages, fmt.Sprintf("php%s-%s", c.PHPVersion, ext))
	}
	packages = append(packages, "php-common", "php-pear")
	return packages
}

// PanelLink returns the filesystem path of the admin panel symlink
// inside the web root.
func (c *Config) PanelLink() string {
	return path.Join(c.WebRoot, strings.TrimPrefix(c.PanelPath, "/"))
}

package config

// Defaults matching the tunables of the original provisioning setup.
const (
	// DefaultPHPVersion selects which PHP-FPM package set and local
	// socket path are targeted.
	DefaultPHPVersion = "8.2"

	// DefaultWebRoot is where web content and the admin panel link
	// are placed.
	DefaultWebRoot = "/var/www/html"

	// DefaultServerName matches any server name (wildcard vhost).
	DefaultServerName = "_"

	// DefaultSiteConfigPath is nginx's default site configuration,
	// fully overwritten on every run.
	DefaultSiteConfigPath = "/etc/nginx/sites-available/default"

	// DefaultMySQLSocket is the unix socket for the passwordless
	// post-install root connection.
	DefaultMySQLSocket = "/var/run/mysqld/mysqld.sock"

	// DefaultPanelPath is the URL path the admin panel is served
	// under.
	DefaultPanelPath = "/phpmyadmin"
)

// Fixed service and account names.
const (
	// NginxService is the reverse proxy service unit.
	NginxService = "nginx"

	// MySQLService is the database engine service unit.
	MySQLService = "mysql"

	// AdminUser is the database administrative account.
	AdminUser = "root"

	// PanelShareDir is where the phpmyadmin package installs the
	// panel; it is symlinked into the web root.
	PanelShareDir = "/usr/share/phpmyadmin"

	// HtpasswdPath holds bcrypt credentials when panel basic auth is
	// enabled.
	HtpasswdPath = "/etc/nginx/.lempctl-htpasswd"
)

// DefaultConfigFile is the config file name looked up in the current
// directory when no --config flag is given.
const DefaultConfigFile = "lempctl.yaml"

package nginx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lempctl/lempctl/internal/config"
)

func TestSiteConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	content := SiteConfig(cfg)

	assert.Contains(t, content, "root /var/www/html;")
	assert.Contains(t, content, "unix:/run/php/php8.2-fpm.sock")
	assert.Contains(t, content, "listen 80 default_server;")
	assert.Contains(t, content, "listen [::]:80 default_server;")
	assert.Contains(t, content, "server_name _;")
	assert.Contains(t, content, "index index.php index.html index.htm;")
	assert.Contains(t, content, "try_files $uri $uri/ =404;")
}

func TestSiteConfig_DeniesHiddenFiles(t *testing.T) {
	t.Parallel()
	content := SiteConfig(config.Default())

	idx := strings.Index(content, `location ~ /\.ht`)
	require.GreaterOrEqual(t, idx, 0, "expected a hidden-file location block")
	assert.Contains(t, content[idx:], "deny all;")
}

func TestSiteConfig_SocketTracksPHPVersion(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.PHPVersion = "8.3"

	content := SiteConfig(cfg)
	assert.Contains(t, content, "unix:/run/php/php8.3-fpm.sock")
	assert.NotContains(t, content, "php8.2-fpm.sock")
}

func TestSiteConfig_CustomWebRootAndServerName(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.WebRoot = "/srv/www"
	cfg.ServerName = "example.test"

	content := SiteConfig(cfg)
	assert.Contains(t, content, "root /srv/www;")
	assert.Contains(t, content, "server_name example.test;")
}

func TestSiteConfig_PanelAuthDisabledByDefault(t *testing.T) {
	t.Parallel()
	content := SiteConfig(config.Default())
	assert.NotContains(t, content, "auth_basic")
}

func TestSiteConfig_PanelAuthEnabled(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.PanelBasicAuth = true

	content := SiteConfig(cfg)
	assert.Contains(t, content, "location ^~ /phpmyadmin {")
	assert.Contains(t, content, `auth_basic "Database administration";`)
	assert.Contains(t, content, "auth_basic_user_file "+config.HtpasswdPath+";")
}

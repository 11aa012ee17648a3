package provision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/lempctl/lempctl/internal/config"
	"github.com/lempctl/lempctl/internal/mysql"
	"github.com/lempctl/lempctl/internal/nginx"
	"github.com/lempctl/lempctl/internal/util/passgen"
	"github.com/lempctl/lempctl/internal/util/prerequisites"
)

// panelPreseed answers phpMyAdmin's installer questions up front: no
// web server reconfiguration (the generated nginx config serves the
// panel, and an empty answer keeps apt from pulling in apache2) and no
// dbconfig-common database setup.
const panelPreseed = "phpmyadmin phpmyadmin/reconfigure-webserver multiselect \n" +
	"phpmyadmin phpmyadmin/dbconfig-install boolean false\n"

// PackageManager is the package-manager capability the sequence needs.
type PackageManager interface {
	Update(ctx context.Context) error
	Upgrade(ctx context.Context) error
	Install(ctx context.Context, packages ...string) error
	Preseed(ctx context.Context, selections string) error
}

// ServiceManager is the service-manager capability the sequence needs.
type ServiceManager interface {
	Start(ctx context.Context, service string) error
	Restart(ctx context.Context, service string) error
	Enable(ctx context.Context, service string) error
}

// ProxyConfigurator writes and validates the reverse proxy site
// configuration.
type ProxyConfigurator interface {
	WriteSiteConfig(cfg *config.Config) error
	Validate(ctx context.Context) error
}

// SessionOpener opens the administrative database session used for
// hardening.
type SessionOpener func(ctx context.Context, socket string) (mysql.Session, error)

// Provisioner runs the full provisioning sequence against injected
// collaborators.
type Provisioner struct {
	cfg      *config.Config
	packages PackageManager
	services ServiceManager
	proxy    ProxyConfigurator
	open     SessionOpener

	// Replaceable in tests.
	requireRoot func() error
	newPassword func() (string, error)
	writeFile   func(name string, data []byte, perm os.FileMode) error
	symlink     func(oldname, newname string) error
}

// New returns a Provisioner wired to the given collaborators.
func New(cfg *config.Config, packages PackageManager, services ServiceManager, proxy ProxyConfigurator, open SessionOpener) *Provisioner {
	return &Provisioner{
		cfg:      cfg,
		packages: packages,
		services: services,
		proxy:    proxy,
		open:     open,

		requireRoot: prerequisites.RequireRoot,
		newPassword: passgen.Password,
		writeFile:   os.WriteFile,
		symlink:     os.Symlink,
	}
}

// Run executes the sequence and returns the final access report. On
// error the returned StageError names the stage that failed; every
// stage after it was not attempted.
func (p *Provisioner) Run(ctx context.Context) (*Report, error) {
	if err := p.requireRoot(); err != nil {
		return nil, stageErr(StagePrecheck, err)
	}

	report, err := p.resolveCredentials()
	if err != nil {
		return nil, stageErr(StageCredentials, err)
	}

	log.Printf("Provisioning LEMP stack (PHP %s, web root %s)", p.cfg.PHPVersion, p.cfg.WebRoot)

	if err := p.updatePackages(ctx); err != nil {
		return nil, stageErr(StagePackageUpdate, err)
	}

	if err := p.installPackages(ctx); err != nil {
		return nil, stageErr(StagePackageInstall, err)
	}

	if err := p.hardenDatabase(ctx, report.AdminPassword); err != nil {
		return nil, stageErr(StageDatabaseHardening, err)
	}

	if err := p.configureProxy(ctx, report); err != nil {
		return nil, stageErr(StageProxyConfig, err)
	}

	if err := p.activateServices(ctx); err != nil {
		return nil, stageErr(StageServiceActivation, err)
	}

	log.Printf("Provisioning complete")
	return report, nil
}

// resolveCredentials generates the run's credentials. A failing random
// source aborts the run; weak randomness never silently substitutes.
func (p *Provisioner) resolveCredentials() (*Report, error) {
	password, err := p.newPassword()
	if err != nil {
		return nil, err
	}

	report := &Report{
		PanelURL:      "http://<server-address>" + p.cfg.PanelPath,
		AdminUser:     config.AdminUser,
		AdminPassword: password,
	}

	if p.cfg.PanelBasicAuth {
		panelPassword, err := p.newPassword()
		if err != nil {
			return nil, err
		}
		report.PanelAuthUser = config.AdminUser
		report.PanelAuthPassword = panelPassword
	}

	return report, nil
}

// updatePackages refreshes the package index and upgrades installed
// packages. The index refresh must succeed before anything else.
func (p *Provisioner) updatePackages(ctx context.Context) error {
	log.Printf("Refreshing package index")
	if err := p.packages.Update(ctx); err != nil {
		return err
	}

	log.Printf("Upgrading installed packages")
	return p.packages.Upgrade(ctx)
}

// installPackages installs the proxy, database engine, script runtime
// and admin panel, pre-seeding debconf so the panel install stays
// non-interactive and does not drag in apache2.
func (p *Provisioner) installPackages(ctx context.Context) error {
	log.Printf("Installing nginx and MySQL")
	if err := p.packages.Install(ctx, "nginx", "mysql-server", "mysql-client"); err != nil {
		return err
	}

	log.Printf("Installing PHP %s runtime and extensions", p.cfg.PHPVersion)
	if err := p.packages.Install(ctx, p.cfg.PHPPackages()...); err != nil {
		return err
	}

	log.Printf("Installing phpMyAdmin")
	if err := p.packages.Preseed(ctx, panelPreseed); err != nil {
		return err
	}
	if err := p.packages.Install(ctx, "phpmyadmin"); err != nil {
		return err
	}

	return p.ensurePanelLink()
}

// ensurePanelLink links the installed panel into the web root.
func (p *Provisioner) ensurePanelLink() error {
	err := p.symlink(config.PanelShareDir, p.cfg.PanelLink())
	if err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("failed to link admin panel into web root: %w", err)
	}
	return nil
}

// hardenDatabase brings the engine up, enables it at boot, and issues
// the hardening statements over one administrative session.
func (p *Provisioner) hardenDatabase(ctx context.Context, password string) error {
	log.Printf("Starting and hardening MySQL")
	if err := p.services.Start(ctx, config.MySQLService); err != nil {
		return err
	}
	if err := p.services.Enable(ctx, config.MySQLService); err != nil {
		return err
	}

	session, err := p.open(ctx, p.cfg.MySQLSocket)
	if err != nil {
		return err
	}
	defer session.Close()

	return mysql.Harden(ctx, session, password)
}

// configureProxy writes the site configuration and validates it with
// the proxy's own syntax checker before any service is touched.
func (p *Provisioner) configureProxy(ctx context.Context, report *Report) error {
	if p.cfg.PanelBasicAuth {
		entry, err := nginx.HtpasswdEntry(report.PanelAuthUser, report.PanelAuthPassword)
		if err != nil {
			return err
		}
		if err := p.writeFile(config.HtpasswdPath, []byte(entry), 0600); err != nil {
			return fmt.Errorf("failed to write htpasswd file: %w", err)
		}
	}

	log.Printf("Writing nginx site configuration to %s", p.cfg.SiteConfigPath)
	if err := p.proxy.WriteSiteConfig(p.cfg); err != nil {
		return err
	}

	log.Printf("Validating nginx configuration")
	return p.proxy.Validate(ctx)
}

// activateServices restarts each managed service so new configuration
// takes effect, then enables it at boot. Restarts are unconditional;
// no post-restart health check is performed.
func (p *Provisioner) activateServices(ctx context.Context) error {
	services := []string{p.cfg.FPMService(), config.MySQLService, config.NginxService}
	for _, service := range services {
		log.Printf("Restarting and enabling %s", service)
		if err := p.services.Restart(ctx, service); err != nil {
			return err
		}
		if err := p.services.Enable(ctx, service); err != nil {
			return err
		}
	}
	return nil
}

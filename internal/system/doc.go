// Package system abstracts execution of host management commands.
//
// Every real side effect of the provisioner happens by invoking external
// binaries (apt-get, debconf-set-selections, systemctl, nginx). The
// Runner interface keeps that behind a narrow seam so the provisioning
// sequence can be exercised with recording stubs in tests.
package system

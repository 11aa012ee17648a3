// Package nginx generates, writes and validates the reverse proxy
// site configuration.
//
// Generation is a pure function from the provisioning configuration to
// the config text, so it is testable without touching the filesystem.
// The configurator enforces validate-before-apply: the freshly written
// file must pass `nginx -t` before any service restart is attempted,
// so a syntactically broken configuration can never be put into force.
package nginx

// Package config defines the provisioning configuration for lempctl.
//
// A Config is loaded once at process start, validated, and treated as
// immutable by every downstream component. It carries the tunables the
// stack is parametrized on (PHP version, web root) together with the
// fixed system paths the provisioner writes to.
package config

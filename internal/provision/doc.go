// Package provision drives the one-shot LEMP provisioning sequence.
//
// The sequence is a single linear pass: privilege precheck, package
// index refresh and upgrade, stack installation, database hardening,
// proxy configuration with validate-before-apply, service activation,
// and the final credential report. Any step error aborts the whole run
// immediately; there are no retries and no rollback. A late failure
// (for example a service restart after the database password has
// already been changed) leaves the host partially configured, with the
// new credential only available from the failed run's output.
package provision

// Package wizard implements the interactive configuration wizard for
// `lempctl init`. It only produces the YAML config file; provisioning
// itself never prompts.
package wizard

package provision

import (
	"errors"
	"fmt"
)

// Stage identifies one step of the provisioning sequence.
type Stage string

// Stages in execution order.
const (
	StagePrecheck          Stage = "precheck"
	StageCredentials       Stage = "credentials"
	StagePackageUpdate     Stage = "package-update"
	StagePackageInstall    Stage = "package-install"
	StageDatabaseHardening Stage = "database-hardening"
	StageProxyConfig       Stage = "proxy-configuration"
	StageServiceActivation Stage = "service-activation"
)

// StageError wraps a step failure with the stage it occurred in, so
// callers can tell how far the run got before aborting.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage returns the provisioning stage an error originated from.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

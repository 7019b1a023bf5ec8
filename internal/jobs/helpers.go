// Package jobs defines the River Queue background jobs of the intake
// pipeline: asynchronous package processing after a watched-folder receive,
// the watched-folder ingester itself, and periodic maintenance (archive
// sweep, notification cleanup).
package jobs

import (
	"github.com/riverqueue/river"

	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

// cancelOnTerminal converts pipeline errors that retrying cannot fix into
// river.JobCancel, so the job is cancelled instead of burning attempts.
// A busy package lock is the one transient pipeline error; everything else
// carrying an application code (validation failure, illegal status, missing
// package) will fail identically on every retry.
func cancelOnTerminal(err error) error {
	if err == nil {
		return nil
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		return err
	}
	if appErr.Code == apperrors.CodePackageBusy {
		return err
	}
	return river.JobCancel(err)
}

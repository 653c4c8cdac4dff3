package worker

import (
	"context"
	"errors"
)

// JobHandler executes one kind of queued job. The worker routes each
// claimed row to the handler whose Type matches its job_type.
type JobHandler interface {
	// Type names the job kind this handler owns.
	Type() string

	// Handle runs the job. payload is the raw JSON stored with the row.
	// Wrap unrecoverable failures with NewPermanentError so the job is
	// finalized instead of retried.
	Handle(ctx context.Context, payload []byte) error
}

// PermanentError marks a failure that retrying cannot fix. Jobs failing
// with one are finalized as failed rather than rescheduled.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// NewPermanentError wraps err so the worker will not retry the job.
func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err wraps a PermanentError.
func IsPermanent(err error) bool {
	var permErr *PermanentError
	return errors.As(err, &permErr)
}

package ingest

import (
	"errors"
	"fmt"
)

var ErrPoolStopped = errors.New("ingest pool is not running")

// SubmitError represents a profile that could not be published
type SubmitError struct {
	Stage   string // validate or store
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

func NewSubmitError(stage, message string, err error) error {
	return &SubmitError{
		Stage:   stage,
		Message: message,
		Err:     err,
	}
}

package models

import (
	"errors"
	"fmt"
)

// ErrPageLoadTimeout is returned when the page never reached its readiness condition.
var ErrPageLoadTimeout = errors.New("page load timeout")

// UnclassifiedError wraps any failure that is neither a load timeout nor a
// validation failure, e.g. a lost browser connection.
type UnclassifiedError struct {
	Err error
}

func (e *UnclassifiedError) Error() string {
	return fmt.Sprintf("scrape failed: %v", e.Err)
}

func (e *UnclassifiedError) Unwrap() error {
	return e.Err
}

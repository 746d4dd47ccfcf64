package models

import (
	"errors"
	"fmt"
)

// ErrTeamNotFound reports a team id missing from the static directory.
var ErrTeamNotFound = errors.New("team not found in directory")

// UpstreamError wraps a failure from the statistics provider with the
// operation that failed, so surfaced errors describe their cause.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgMissingConfig = "missing required configuration"
	ErrMsgFetchFailed   = "failed to fetch messages"
	ErrMsgSinkFailed    = "sink write failed"
	ErrMsgNoCycleYet    = "no fetch cycle has finished yet"
	ErrMsgLastCycle     = "last fetch cycle failed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrMissingConfig = errors.New(ErrMsgMissingConfig)
	ErrFetchFailed   = errors.New(ErrMsgFetchFailed)
	ErrSinkFailed    = errors.New(ErrMsgSinkFailed)
	ErrNoCycleYet    = errors.New(ErrMsgNoCycleYet)
	ErrLastCycle     = errors.New(ErrMsgLastCycle)
)

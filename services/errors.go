package services

import "errors"

var (
	// ErrFetchInFlight rejects an overlapping page fetch on one
	// aggregator instance. Callers wait for the outstanding fetch
	// instead of queuing.
	ErrFetchInFlight = errors.New("page fetch already in flight")

	// ErrLedgerUnavailable wraps transient store failures on reaction
	// writes. The caller owns any optimistic-state rollback; no retry
	// happens here.
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError marks input rejected before any write. Handlers render
// it inline next to the offending field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// Trust-staking and matching failures.
	ErrUserNotFound         = errors.New("user not found")
	ErrIdentityNotFound     = errors.New("identity not found")
	ErrInsufficientStake    = errors.New("insufficient stake")
	ErrNoActiveStake        = errors.New("no active stake")
	ErrStorageUninitialized = errors.New("storage uninitialized")
)

package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an application reuses an email that
	// already belongs to another creator.
	ErrDuplicateEmail = errors.New("an application with this email already exists")

	// ErrCodeAllocationExhausted is returned when referral code generation
	// keeps colliding after the retry bound. It may indicate code-space
	// exhaustion and is counted for alerting.
	ErrCodeAllocationExhausted = errors.New("could not generate unique referral code")
)

package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// ledger specific errors
	ErrorAlreadyRecorded = errors.New("already recorded today")

	// input errors: malformed period token, non-numeric target, empty name
	ErrorValidation = errors.New("validation error")

	// privileged operation invoked by a non-privileged caller
	ErrorUnauthorized = errors.New("unauthorized")

	// store-level faults that must not cross to the presentation layer raw
	ErrorInternal = errors.New("internal error")
)

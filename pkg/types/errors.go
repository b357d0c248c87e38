package types

import "errors"

// Entity operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidStatus = errors.New("invalid shipping status")
)

// Session errors.
var (
	ErrBadPasscode = errors.New("incorrect passcode")
)

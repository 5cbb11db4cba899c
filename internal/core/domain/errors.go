package domain

import "errors"

// Business failures surfaced by the employee services. All are expected,
// user-facing outcomes rather than system faults; anything else bubbling out
// of a repository is treated as an infrastructure error by the API layer.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrPasswordMismatch = errors.New("password incorrect")
	ErrAccountLocked    = errors.New("account locked")
	ErrTooManyAttempts  = errors.New("too many failed login attempts")
	ErrEmployeeExists   = errors.New("username already taken")
	ErrInvalidArgument  = errors.New("invalid argument")
)

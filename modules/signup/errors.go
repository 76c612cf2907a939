package signup

import "errors"

var (
	// ErrEmailTaken is returned by Store.Create when the email is already
	// registered.
	ErrEmailTaken = errors.New("signup: email already registered")

	// ErrAccountNotFound is returned by Store.ByEmail when no account
	// matches.
	ErrAccountNotFound = errors.New("signup: account not found")

	// ErrSessionGone is returned when a signals update references a live
	// session that no longer exists, e.g. after the SSE connection dropped.
	ErrSessionGone = errors.New("signup: live session gone")
)

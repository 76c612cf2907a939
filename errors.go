package formkit

import "errors"

var (
	// ErrNoScope is returned by NewValidator when no reactive scope is provided.
	// A validator cannot exist outside a live session.
	ErrNoScope = errors.New("formkit: validator requires a reactive scope")

	// ErrNilChild is returned by AddValidator when the child is nil.
	ErrNilChild = errors.New("formkit: child validator is nil")

	// ErrChildAttached is returned by AddValidator when the child already
	// belongs to a different parent. Attachment is permanent; there is no
	// detach API.
	ErrChildAttached = errors.New("formkit: validator is already attached to another parent")

	// ErrValidatorCycle is returned by AddValidator when attaching the child
	// would make a validator its own ancestor.
	ErrValidatorCycle = errors.New("formkit: attachment would create a cycle")

	// ErrInvalidRuleResult is returned by Validate when a rule produces an
	// error that carries no message. A rule must return nil, SkipField, or an
	// error whose message is the feedback text.
	ErrInvalidRuleResult = errors.New("formkit: rule returned an invalid result")
)

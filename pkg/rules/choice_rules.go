package rules

import (
	"errors"
	"slices"

	"github.com/dmitrymomot/formkit"
)

// In fails when the value is not one of the allowed choices.
func In(choices []string, msg ...string) formkit.Rule {
	text := message(msg, "Must be one of the allowed values")
	return func(value any) error {
		if !slices.Contains(choices, stringValue(value)) {
			return errors.New(text)
		}
		return nil
	}
}

// NotIn fails when the value is one of the forbidden choices.
func NotIn(choices []string, msg ...string) formkit.Rule {
	text := message(msg, "This value is not allowed")
	return func(value any) error {
		if slices.Contains(choices, stringValue(value)) {
			return errors.New(text)
		}
		return nil
	}
}

package rules

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formkit"
)

// Required fails when the value is empty after trimming whitespace.
func Required(msg ...string) formkit.Rule {
	text := message(msg, "This field is required")
	return func(value any) error {
		if isBlank(value) {
			return errors.New(text)
		}
		return nil
	}
}

// MinLength fails when the value is shorter than min characters.
func MinLength(min int, msg ...string) formkit.Rule {
	text := message(msg, fmt.Sprintf("Must be at least %d characters", min))
	return func(value any) error {
		if len([]rune(stringValue(value))) < min {
			return errors.New(text)
		}
		return nil
	}
}

// MaxLength fails when the value is longer than max characters.
func MaxLength(max int, msg ...string) formkit.Rule {
	text := message(msg, fmt.Sprintf("Must be at most %d characters", max))
	return func(value any) error {
		if len([]rune(stringValue(value))) > max {
			return errors.New(text)
		}
		return nil
	}
}

// Match fails when the value does not match the pattern.
func Match(pattern *regexp.Regexp, msg ...string) formkit.Rule {
	text := message(msg, "Invalid format")
	return func(value any) error {
		if !pattern.MatchString(stringValue(value)) {
			return errors.New(text)
		}
		return nil
	}
}

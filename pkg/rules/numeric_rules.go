package rules

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmitrymomot/formkit"
)

// Number fails when the value is not numeric.
func Number(msg ...string) formkit.Rule {
	text := message(msg, "Must be a number")
	return func(value any) error {
		if _, ok := floatValue(value); !ok {
			return errors.New(text)
		}
		return nil
	}
}

// Integer fails when the value is not a whole number.
func Integer(msg ...string) formkit.Rule {
	text := message(msg, "Must be a whole number")
	return func(value any) error {
		f, ok := floatValue(value)
		if !ok || f != math.Trunc(f) {
			return errors.New(text)
		}
		return nil
	}
}

// Min fails when the value is numeric and below min, or not numeric at all.
func Min(min float64, msg ...string) formkit.Rule {
	text := message(msg, fmt.Sprintf("Must be at least %v", min))
	return func(value any) error {
		f, ok := floatValue(value)
		if !ok || f < min {
			return errors.New(text)
		}
		return nil
	}
}

// Max fails when the value is numeric and above max, or not numeric at all.
func Max(max float64, msg ...string) formkit.Rule {
	text := message(msg, fmt.Sprintf("Must be at most %v", max))
	return func(value any) error {
		f, ok := floatValue(value)
		if !ok || f > max {
			return errors.New(text)
		}
		return nil
	}
}

// Between fails when the value is outside the inclusive [min, max] range.
func Between(min, max float64, msg ...string) formkit.Rule {
	text := message(msg, fmt.Sprintf("Must be between %v and %v", min, max))
	return func(value any) error {
		f, ok := floatValue(value)
		if !ok || f < min || f > max {
			return errors.New(text)
		}
		return nil
	}
}

package formkit

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/reactive"
)

// Rule checks a single field value. A nil return means the value passes.
// A non-nil return fails the field; the error message is the feedback text
// shown to the user. Returning SkipField marks the field valid and stops
// the rest of its chain.
//
// Extra parameters are captured by the caller's own closure:
//
//	v.AddRule("age", func(value any) error {
//		if n, ok := value.(int); !ok || n < minAge {
//			return fmt.Errorf("must be at least %d", minAge)
//		}
//		return nil
//	})
//
// A rule that panics is a programmer error; the panic propagates out of
// Validate untouched.
type Rule func(value any) error

// SkipField signals that a field should be considered valid without running
// the remaining rules in its chain. Used by optional-field rules: when the
// input is blank there is nothing further to check.
var SkipField = errors.New("formkit: skip remaining rules for field")

// ruleEntry binds a rule to the scope that owns its target field. The scope
// determines both the fully-qualified result key and where the current value
// is read from.
type ruleEntry struct {
	rule  Rule
	scope *reactive.Scope
}

// fieldChain holds the ordered rules registered for one field-local name.
// Registration order is evaluation order: the first failing rule settles
// the field and later rules never run.
type fieldChain struct {
	name    string
	entries []ruleEntry
}

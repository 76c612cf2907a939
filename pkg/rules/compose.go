package rules

import "github.com/dmitrymomot/formkit"

// Optional marks the field valid and stops its chain when the value is
// blank. Register it before format rules to make a field optional:
//
//	v.AddRule("website", rules.Optional()).
//		AddRule("website", rules.URL())
func Optional() formkit.Rule {
	return func(value any) error {
		if isBlank(value) {
			return formkit.SkipField
		}
		return nil
	}
}

// All combines several rules into one chain entry, returning the first
// non-nil result. SkipField from an inner rule stops the combined rule the
// same way it stops a chain.
func All(rules ...formkit.Rule) formkit.Rule {
	return func(value any) error {
		for _, rule := range rules {
			if err := rule(value); err != nil {
				return err
			}
		}
		return nil
	}
}

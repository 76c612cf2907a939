package formkit

import "sort"

// Results maps fully-qualified field keys to their validation outcome.
// A nil value means the field passes; a non-nil value is the first failing
// rule's error. Every field reachable from the validator tree at evaluation
// time has a key, so a missing key never means "unvalidated".
type Results map[string]error

// OK reports whether every field passes.
func (r Results) OK() bool {
	for _, err := range r {
		if err != nil {
			return false
		}
	}
	return true
}

// Fields returns the keys of the result set in sorted order.
func (r Results) Fields() []string {
	fields := make([]string, 0, len(r))
	for key := range r {
		fields = append(fields, key)
	}
	sort.Strings(fields)
	return fields
}

// Failed returns the keys of all failing fields in sorted order.
func (r Results) Failed() []string {
	var fields []string
	for key, err := range r {
		if err != nil {
			fields = append(fields, key)
		}
	}
	sort.Strings(fields)
	return fields
}

// Messages returns the failing fields and their messages.
func (r Results) Messages() map[string]string {
	messages := make(map[string]string)
	for key, err := range r {
		if err != nil {
			messages[key] = err.Error()
		}
	}
	return messages
}

// Merge combines two result sets. No key present in either input is ever
// dropped. For a key present in both, a failing entry beats a passing one
// regardless of side; when both fail, a's message wins; when both pass, the
// result passes.
//
// Callers rely on the a-wins-on-double-failure rule: Validate folds children
// left to right with the accumulated set as a, so the first failure recorded
// for a field survives later, lower-precedence failures.
func Merge(a, b Results) Results {
	merged := make(Results, len(a)+len(b))
	for key, err := range a {
		merged[key] = err
	}
	for key, err := range b {
		if prev, ok := merged[key]; ok && prev != nil {
			continue
		}
		merged[key] = err
	}
	return merged
}

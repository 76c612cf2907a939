// Package formkit is a hierarchical, rule-based validation engine for
// interactive forms driven by a reactive runtime.
//
// Applications register ordered rule chains per field on a Validator, compose
// validators into a tree (one per sub-form), and either query validity
// synchronously to gate actions or enable live feedback that re-validates on
// every relevant field change and pushes the aggregate result to the UI.
//
// Key behaviors:
//
//   - Rules run in registration order; the first failure settles a field and
//     later rules for it never run.
//   - Child results fold into the parent through Merge: no field is ever
//     dropped and a failing entry always beats a passing one.
//   - An override condition suspends all of a node's rules, reporting every
//     reachable field as passing while it holds.
//   - Enable/Disable toggle exactly one live observation per standalone
//     validator; attached children never drive feedback on their own.
//
// Basic usage:
//
//	sess := reactive.NewSession(reactive.WithOutbox(outbox))
//	scope := sess.Scope()
//
//	v, err := formkit.NewValidator(scope)
//	if err != nil {
//		return err
//	}
//	v.AddRule("name", rules.Required()).
//		AddRule("email", rules.Optional()).
//		AddRule("email", rules.Email())
//
//	if err := v.Enable(); err != nil { // live feedback from here on
//		return err
//	}
//
//	scope.Set("email", "not-an-email") // UI receives updated feedback
//
//	if ok, err := v.IsValid(); err == nil && ok {
//		// safe to submit
//	}
//
// Sub-forms attach as children and contribute their results to the parent:
//
//	login := sess.Scope().Namespace("login")
//	child, _ := formkit.NewValidator(login)
//	child.AddRule("password", rules.MinLength(8))
//	if err := v.AddValidator(child); err != nil {
//		return err
//	}
//
// The reactive runtime lives in pkg/reactive, built-in rule constructors in
// pkg/rules, and localized message catalogs in pkg/catalog.
package formkit

// Package reactive provides the session-scoped reactive runtime that formkit
// validators plug into: named value cells with automatic dependency tracking,
// prioritized observers that re-run when the values they read change, a
// per-session key-value store, and an outbox for pushing messages to the UI.
//
// A Session owns everything for one end-user connection. Reads performed
// inside a running observer register dependencies; Set invalidates dependent
// observers and flushes them unless a Batch is open. Scopes give namespaced
// views over a session so sub-forms can reuse field-local names without
// colliding.
//
//	sess := reactive.NewSession()
//	scope := sess.Scope()
//	scope.Set("email", "a@b.co")
//
//	reactive.Observe(sess, func() error {
//		fmt.Println("email is now", scope.Get("email"))
//		return nil
//	})
//
//	scope.Set("email", "c@d.co") // observer re-runs
//
// Sessions follow the host runtime's single-threaded cooperative model: all
// access to one session must happen on the goroutine that drives it. Stores
// and outboxes may be shared across sessions and are safe for concurrent use.
package reactive

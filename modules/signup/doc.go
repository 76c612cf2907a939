// Package signup is the reference formkit application module: a signup form
// validated live over a datastar SSE connection and gated server-side on
// submit.
//
// The module mounts four routes:
//
//	GET  /         the signup page
//	GET  /live     SSE connection; one reactive session per connection with
//	               live validation feedback pushed as signal patches
//	POST /signals  field updates from the browser, fed into the session
//	POST /         submit; re-validates in an isolated session and persists
//	               the account when everything passes
//
// Accounts persist through the Store interface; PGStore backs it with
// Postgres and MemoryStore keeps everything in process for tests and demos.
package signup

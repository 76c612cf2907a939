package reactive

import "strings"

// keySeparator joins namespace segments into fully-qualified keys, matching
// the flat signal paths the UI layer works with.
const keySeparator = "-"

// Scope is a namespaced view over a session. The root scope addresses fields
// by their bare names; nested scopes prefix every name with their namespace
// chain, so sub-forms can reuse field names without colliding.
type Scope struct {
	session *Session
	path    []string
}

// Session returns the session this scope belongs to.
func (sc *Scope) Session() *Session { return sc.session }

// Namespace returns a child scope nested under name.
func (sc *Scope) Namespace(name string) *Scope {
	path := make([]string, 0, len(sc.path)+1)
	path = append(path, sc.path...)
	path = append(path, name)
	return &Scope{session: sc.session, path: path}
}

// FullKey returns the fully-qualified key for a field-local name, e.g.
// "login-email" for field "email" in namespace "login".
func (sc *Scope) FullKey(name string) string {
	if len(sc.path) == 0 {
		return name
	}
	return strings.Join(sc.path, keySeparator) + keySeparator + name
}

// Get reads the field's current value, registering a reactive dependency
// when called from inside a running observer.
func (sc *Scope) Get(name string) any {
	return sc.session.Get(sc.FullKey(name))
}

// Set stores the field's value, invalidating dependent observers.
func (sc *Scope) Set(name string, value any) {
	sc.session.Set(sc.FullKey(name), value)
}

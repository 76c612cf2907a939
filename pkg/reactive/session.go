package reactive

import (
	"log/slog"
	"reflect"

	"github.com/google/uuid"
)

// Session is the reactive context for one end-user connection. It holds the
// current field values, tracks which observers depend on which values, and
// carries the per-session store and UI outbox.
//
// A session is not safe for concurrent use; all access must happen on the
// goroutine driving the connection.
type Session struct {
	id     string
	store  Store
	outbox Outbox
	log    *slog.Logger

	values map[string]any
	// deps maps a value key to the observers that read it on their last run.
	deps    map[string]map[*Observer]struct{}
	pending map[*Observer]struct{}

	// active is the stack of currently executing observers; reads register
	// dependencies against the top entry. A nil top entry marks an Isolate
	// frame, which suppresses registration.
	active   []*Observer
	seq      int
	batching bool
	flushing bool
}

// SessionOption configures a session at construction.
type SessionOption func(*Session)

// WithID overrides the generated session ID.
func WithID(id string) SessionOption {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithStore sets the per-session key-value store. Defaults to an in-memory
// store private to the session.
func WithStore(store Store) SessionOption {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithOutbox sets the UI outbox. Defaults to a no-op outbox.
func WithOutbox(outbox Outbox) SessionOption {
	return func(s *Session) {
		if outbox != nil {
			s.outbox = outbox
		}
	}
}

// WithLogger sets the session logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSession creates a reactive session with a generated ID.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.NewString(),
		store:   NewMemoryStore(),
		outbox:  NopOutbox{},
		log:     slog.New(slog.DiscardHandler),
		values:  make(map[string]any),
		deps:    make(map[string]map[*Observer]struct{}),
		pending: make(map[*Observer]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Store returns the per-session key-value store.
func (s *Session) Store() Store { return s.store }

// Outbox returns the UI outbox.
func (s *Session) Outbox() Outbox { return s.outbox }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.log }

// Scope returns the root scope of the session.
func (s *Session) Scope() *Scope {
	return &Scope{session: s}
}

// Get reads the value stored under key, registering a dependency when called
// from inside a running observer. Returns nil when the key has never been set.
func (s *Session) Get(key string) any {
	if o := s.currentObserver(); o != nil {
		o.track(key)
		set, ok := s.deps[key]
		if !ok {
			set = make(map[*Observer]struct{})
			s.deps[key] = set
		}
		set[o] = struct{}{}
	}
	return s.values[key]
}

// Set stores a value under key and invalidates every observer that read it.
// Setting a value deep-equal to the current one is a no-op. Outside a Batch,
// invalidated observers re-run before Set returns.
func (s *Session) Set(key string, value any) {
	if old, ok := s.values[key]; ok && reflect.DeepEqual(old, value) {
		return
	}
	s.values[key] = value
	for o := range s.deps[key] {
		if !o.stopped {
			s.pending[o] = struct{}{}
		}
	}
	if !s.batching && !s.flushing {
		s.Flush()
	}
}

// Batch runs fn with flushing deferred so several Set calls coalesce into a
// single re-evaluation pass.
func (s *Session) Batch(fn func()) {
	if s.batching {
		fn()
		return
	}
	s.batching = true
	defer func() {
		s.batching = false
		s.Flush()
	}()
	fn()
}

// Isolate runs fn without registering reactive dependencies: reads inside fn
// do not subscribe the surrounding observer to future changes.
func (s *Session) Isolate(fn func() error) error {
	s.active = append(s.active, nil)
	defer func() { s.active = s.active[:len(s.active)-1] }()
	return fn()
}

// Flush re-runs all pending observers, highest priority first, registration
// order within a priority. Observers scheduled during the pass run in the
// same flush. No-op while a flush is already in progress.
func (s *Session) Flush() {
	if s.flushing {
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	for len(s.pending) > 0 {
		batch := make([]*Observer, 0, len(s.pending))
		for o := range s.pending {
			batch = append(batch, o)
		}
		clear(s.pending)

		sortObservers(batch)
		for _, o := range batch {
			if o.stopped {
				continue
			}
			s.run(o)
		}
	}
}

// run executes one observer, re-recording its dependencies from scratch.
func (s *Session) run(o *Observer) {
	o.untrack()
	s.active = append(s.active, o)
	defer func() { s.active = s.active[:len(s.active)-1] }()

	if err := o.fn(); err != nil {
		s.log.Error("reactive observer failed",
			slog.String("session_id", s.id),
			slog.Int("priority", o.priority),
			slog.Any("error", err),
		)
	}
}

func (s *Session) currentObserver() *Observer {
	if len(s.active) == 0 {
		return nil
	}
	return s.active[len(s.active)-1]
}

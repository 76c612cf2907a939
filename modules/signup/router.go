package signup

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/reactive"
)

// Module wires the signup form routes. One reactive session lives per SSE
// connection; the sessions map lets the signals endpoint find the session its
// update belongs to.
type Module struct {
	cfg   Config
	store Store
	log   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*liveSession
}

// liveSession pairs a reactive session with the mutex serializing access to
// it. The session itself is not safe for concurrent use, and signal updates
// arrive on request goroutines while the SSE goroutine owns setup and
// teardown, so every touch of the session goes through mu.
type liveSession struct {
	mu   sync.Mutex
	sess *reactive.Session
}

// Option configures the module.
type Option func(*Module)

// WithLogger sets the module logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Module) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a signup module over the given account store.
func New(store Store, cfg Config, opts ...Option) *Module {
	m := &Module{
		cfg:      cfg.withDefaults(),
		store:    store,
		log:      slog.New(slog.DiscardHandler),
		sessions: make(map[string]*liveSession),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle returns the module router, mountable under any prefix:
//
//	r.Mount("/signup", signupModule.Handle())
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", m.handlePage)
	r.Get("/live", m.handleLive)
	r.Post("/signals", m.handleSignals)
	r.Post("/", m.handleSubmit)
	return r
}

// handleLive serves the SSE connection driving live validation: it creates a
// reactive session whose outbox patches datastar signals, enables the form
// validator, and holds the connection until the client goes away.
func (m *Module) handleLive(w http.ResponseWriter, r *http.Request) {
	if !formkit.IsDatastar(r) {
		http.Error(w, "datastar connection required", http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)
	sess := reactive.NewSession(
		reactive.WithOutbox(formkit.NewSSEOutbox(sse)),
		reactive.WithLogger(m.log),
	)

	validator, err := newFormValidator(sess.Scope(), m.cfg)
	if err != nil {
		m.log.Error("failed to build form validator", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	live := &liveSession{sess: sess}
	m.mu.Lock()
	m.sessions[sess.ID()] = live
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		delete(m.sessions, sess.ID())
		m.mu.Unlock()
	}()

	live.mu.Lock()
	err = validator.Enable()
	live.mu.Unlock()
	if err != nil {
		m.log.Error("failed to enable validator", slog.Any("error", err))
		return
	}
	defer func() {
		live.mu.Lock()
		defer live.mu.Unlock()
		_ = validator.Disable()
	}()

	m.log.Debug("live validation started", slog.String("session_id", sess.ID()))
	<-r.Context().Done()
}

// handleSignals feeds a field update from the browser into its live session.
// The session is identified by the formkit.setup signal the SSE connection
// patched on enable. Updates batch so one POST triggers one re-validation.
func (m *Module) handleSignals(w http.ResponseWriter, r *http.Request) {
	signals := make(map[string]any)
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "invalid signals payload", http.StatusBadRequest)
		return
	}

	live := m.session(sessionID(signals, r))
	if live == nil {
		http.Error(w, ErrSessionGone.Error(), http.StatusGone)
		return
	}

	live.mu.Lock()
	live.sess.Batch(func() {
		applySignals(live.sess.Scope(), signals)
		live.sess.Scope().Set(fieldDirty, true)
	})
	live.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// handleSubmit validates the posted form in an isolated session and creates
// the account when everything passes. Validation failures come back as a 422
// with per-field messages, mirroring what live feedback shows.
func (m *Module) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := reactive.NewSession(reactive.WithLogger(m.log))
	scope := sess.Scope()
	scope.Set(fieldName, r.PostFormValue(fieldName))
	scope.Set(fieldEmail, r.PostFormValue(fieldEmail))
	scope.Set(fieldTerms, r.PostFormValue(fieldTerms))
	creds := scope.Namespace(credentialsNS)
	creds.Set(fieldPassword, r.PostFormValue(fieldPassword))
	creds.Set(fieldConfirm, r.PostFormValue(fieldConfirm))
	scope.Set(fieldDirty, true)

	validator, err := newFormValidator(scope, m.cfg)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	results, err := validator.Validate()
	if err != nil {
		m.log.Error("validation failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !results.OK() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": results.Messages(),
		})
		return
	}

	hash, err := HashPassword(r.PostFormValue(fieldPassword), m.cfg.BcryptCost)
	if err != nil {
		m.log.Error("failed to hash password", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	account := &Account{
		ID:           uuid.New(),
		Email:        strings.ToLower(r.PostFormValue(fieldEmail)),
		Name:         r.PostFormValue(fieldName),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := m.store.Create(r.Context(), account); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"errors": map[string]string{fieldEmail: "This email is already registered"},
			})
			return
		}
		m.log.Error("failed to create account", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	m.log.Info("account created",
		slog.String("account_id", account.ID.String()),
		slog.String("email", account.Email),
	)
	writeJSON(w, http.StatusCreated, map[string]any{"id": account.ID})
}

// session looks up a live session by ID.
func (m *Module) session(id string) *liveSession {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// sessionID extracts the live session ID from the formkit.setup signal, with
// a query parameter fallback for non-datastar clients.
func sessionID(signals map[string]any, r *http.Request) string {
	if fk, ok := signals["formkit"].(map[string]any); ok {
		if id, ok := fk["setup"].(string); ok {
			return id
		}
	}
	return r.URL.Query().Get("session")
}

// applySignals writes decoded signal values into the scope, descending into
// nested objects as namespaces. The formkit signal subtree is server-owned
// feedback and never treated as field input.
func applySignals(scope *reactive.Scope, signals map[string]any) {
	for name, value := range signals {
		if name == "formkit" {
			continue
		}
		if nested, ok := value.(map[string]any); ok {
			applySignals(scope.Namespace(name), nested)
			continue
		}
		scope.Set(name, value)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

package formkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/reactive"
)

// setupStoreKey marks one-time UI setup as done in the session store so the
// setup message is sent at most once per session, however many validators
// are enabled.
const setupStoreKey = "formkit:setup-done"

// DefaultPriority is the observation priority used when none is configured.
// It should stay above ordinary application observers so the UI never sees
// validation state older than a decision made in the same update cycle.
const DefaultPriority = 1000

// Validator owns ordered rule chains per field, an optional override
// condition, and child validators for sub-forms. A standalone validator can
// drive live UI feedback through Enable/Disable; once attached as a child it
// only ever contributes results to its parent.
type Validator struct {
	scope    *reactive.Scope
	priority int
	log      *slog.Logger

	chains    []*fieldChain
	chainIdx  map[string]*fieldChain
	children  []*Validator
	parent    *Validator
	condition func() bool

	isChild     bool
	enabled     bool
	observation *reactive.Observer
}

// Option configures a validator at construction.
type Option func(*Validator)

// WithPriority sets the live observation's scheduling priority. Higher runs
// earlier within a reactive flush.
func WithPriority(priority int) Option {
	return func(v *Validator) { v.priority = priority }
}

// WithLogger sets the validator's logger. Defaults to the session logger.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// NewValidator creates a validator bound to a reactive scope. Returns
// ErrNoScope when scope is nil: a validator cannot exist outside a live
// session.
func NewValidator(scope *reactive.Scope, opts ...Option) (*Validator, error) {
	if scope == nil {
		return nil, ErrNoScope
	}
	v := &Validator{
		scope:    scope,
		priority: DefaultPriority,
		log:      scope.Session().Logger(),
		chainIdx: make(map[string]*fieldChain),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// RuleOption configures a single rule registration.
type RuleOption func(*ruleEntry)

// RuleScope overrides the scope owning the rule's target field, e.g. to
// validate a field of a namespaced sub-form from the parent validator.
func RuleScope(scope *reactive.Scope) RuleOption {
	return func(e *ruleEntry) {
		if scope != nil {
			e.scope = scope
		}
	}
}

// AddRule appends a rule to the end of the field's chain, creating the chain
// if the field is new. Rules run in registration order and the first failure
// settles the field. The rule itself is not inspected here; a broken rule
// surfaces only when it runs.
func (v *Validator) AddRule(field string, rule Rule, opts ...RuleOption) *Validator {
	entry := ruleEntry{rule: rule, scope: v.scope}
	for _, opt := range opts {
		opt(&entry)
	}

	chain, ok := v.chainIdx[field]
	if !ok {
		chain = &fieldChain{name: field}
		v.chains = append(v.chains, chain)
		v.chainIdx[field] = chain
	}
	chain.entries = append(chain.entries, entry)
	return v
}

// AddValidator attaches child so its results fold into this validator's.
// Attachment is permanent: the child's own feedback lifecycle is forced off
// and any live observation it had is stopped. Attaching the same child to
// the same parent again is a no-op; attaching it elsewhere fails with
// ErrChildAttached, and an attachment that would make a validator its own
// ancestor fails with ErrValidatorCycle.
func (v *Validator) AddValidator(child *Validator) error {
	if child == nil {
		return ErrNilChild
	}
	if child == v {
		return ErrValidatorCycle
	}
	if child.parent != nil {
		if child.parent == v {
			return nil
		}
		return ErrChildAttached
	}
	for node := v.parent; node != nil; node = node.parent {
		if node == child {
			return ErrValidatorCycle
		}
	}

	child.parent = v
	child.isChild = true
	if child.enabled {
		child.observation.Stop()
		child.observation = nil
		child.enabled = false
	}
	v.children = append(v.children, child)
	return nil
}

// SetCondition installs an override predicate. While the predicate returns
// false, Validate skips every rule in this node and reports each reachable
// field as passing. Passing nil clears the override. The predicate runs
// fresh on every Validate call, so reactive reads inside it participate in
// dependency tracking like any rule read.
func (v *Validator) SetCondition(cond func() bool) *Validator {
	v.condition = cond
	return v
}

// Condition returns the current override predicate, or nil when unset.
func (v *Validator) Condition() func() bool {
	return v.condition
}

// Fields returns every fully-qualified field key reachable from this
// validator: all children's fields in child order, then this node's own
// registered fields in registration order, deduplicated keeping the first
// occurrence.
func (v *Validator) Fields() []string {
	var fields []string
	seen := make(map[string]struct{})
	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		fields = append(fields, key)
	}

	for _, child := range v.children {
		for _, key := range child.Fields() {
			add(key)
		}
	}
	for _, chain := range v.chains {
		for _, entry := range chain.entries {
			add(entry.scope.FullKey(chain.name))
		}
	}
	return fields
}

// Validate evaluates the whole subtree and returns one result per reachable
// field. When the override condition is set and currently false, every field
// is reported passing without running any rule or descending into children.
// Otherwise children are validated first and folded left to right, then this
// node's own chains run with first-failure short-circuit, and the two sides
// merge with the accumulated child results taking the a position.
//
// A rule whose error carries no message aborts the pass with
// ErrInvalidRuleResult. A rule that panics is not recovered.
func (v *Validator) Validate() (Results, error) {
	if v.condition != nil && !v.condition() {
		results := make(Results)
		for _, key := range v.Fields() {
			results[key] = nil
		}
		return results, nil
	}

	var dependencyResults Results
	for _, child := range v.children {
		childResults, err := child.Validate()
		if err != nil {
			return nil, err
		}
		dependencyResults = Merge(dependencyResults, childResults)
	}

	own := make(Results)
	for _, chain := range v.chains {
		if err := v.evaluateChain(chain, own); err != nil {
			return nil, err
		}
	}

	return Merge(dependencyResults, own), nil
}

// evaluateChain walks one field's rules in registration order, recording the
// outcome per fully-qualified key into results. A key already settled by an
// earlier entry is skipped; entries registered under different scopes may
// target distinct keys within one chain, which is why the guard is per entry
// rather than per chain.
func (v *Validator) evaluateChain(chain *fieldChain, results Results) error {
	settled := make(map[string]struct{})

	for _, entry := range chain.entries {
		key := entry.scope.FullKey(chain.name)
		if _, done := settled[key]; done {
			continue
		}
		// A failure recorded by a previous chain targeting the same
		// fully-qualified key also settles it.
		if prev, ok := results[key]; ok && prev != nil {
			settled[key] = struct{}{}
			continue
		}

		err := entry.rule(entry.scope.Get(chain.name))
		switch {
		case err == nil:
			// Provisionally passing; finalized below unless a later rule
			// for the same key fails.
			if _, ok := results[key]; !ok {
				results[key] = nil
			}
		case errors.Is(err, SkipField):
			results[key] = nil
			settled[key] = struct{}{}
		case err.Error() == "":
			return fmt.Errorf("%w: field %q returned an error with no message", ErrInvalidRuleResult, key)
		default:
			results[key] = err
			settled[key] = struct{}{}
		}
	}
	return nil
}

// IsValid validates the subtree and reports whether every field passes.
// There is no caching; each call re-runs validation against current values.
func (v *Validator) IsValid() (bool, error) {
	results, err := v.Validate()
	if err != nil {
		return false, err
	}
	return results.OK(), nil
}

// Enable starts live feedback: a reactive observation validates the subtree
// now and on every relevant change, sending the full result set to the UI on
// FeedbackChannel. The first Enable on a session also sends a one-time setup
// message on SetupChannel, guarded through the session store. No-op when the
// validator is a child or already enabled.
func (v *Validator) Enable() error {
	if v.isChild || v.enabled {
		return nil
	}

	sess := v.scope.Session()
	if err := v.ensureSetup(sess); err != nil {
		return err
	}

	v.observation = reactive.Observe(sess, func() error {
		results, err := v.Validate()
		if err != nil {
			// Programmer error inside a rule: leave previous UI state in
			// place rather than sending a bogus all-clear.
			return err
		}
		return sess.Outbox().Send(FeedbackChannel, NewFeedback(results))
	}, reactive.WithPriority(v.priority))
	v.enabled = true

	v.log.Debug("validator enabled",
		slog.String("session_id", sess.ID()),
		slog.Int("priority", v.priority),
	)
	return nil
}

// Disable stops live feedback: the observation is torn down and, for a
// standalone validator, an all-fields-clear message is sent so the UI wipes
// any feedback shown. The result set is computed inside Isolate so the
// teardown path registers no dependencies. No-op when not enabled.
func (v *Validator) Disable() error {
	if !v.enabled {
		return nil
	}

	v.observation.Stop()
	v.observation = nil
	v.enabled = false

	if v.isChild {
		return nil
	}

	sess := v.scope.Session()
	var results Results
	if err := sess.Isolate(func() error {
		var err error
		results, err = v.Validate()
		return err
	}); err != nil {
		return err
	}

	v.log.Debug("validator disabled", slog.String("session_id", sess.ID()))
	return sess.Outbox().Send(FeedbackChannel, AllClear(results.Fields()))
}

// Enabled reports whether live feedback is currently active.
func (v *Validator) Enabled() bool { return v.enabled }

// ensureSetup sends the one-time session setup message, using the session
// store to remember that it already happened.
func (v *Validator) ensureSetup(sess *reactive.Session) error {
	ctx := context.Background()
	if _, err := sess.Store().Get(ctx, setupStoreKey); err == nil {
		return nil
	} else if !errors.Is(err, reactive.ErrKeyNotFound) {
		return err
	}

	if err := sess.Outbox().Send(SetupChannel, sess.ID()); err != nil {
		return err
	}
	return sess.Store().Set(ctx, setupStoreKey, "1")
}

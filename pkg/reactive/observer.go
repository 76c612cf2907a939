package reactive

import "sort"

// defaultPriority is used when an observer is registered without an explicit
// priority. Higher priorities run first within a flush.
const defaultPriority = 0

// Observer is a block of code that runs once on registration and again
// whenever any reactive value it read during its previous run changes.
type Observer struct {
	session  *Session
	fn       func() error
	priority int
	seq      int
	keys     map[string]struct{}
	stopped  bool
}

// ObserveOption configures an observer at registration.
type ObserveOption func(*Observer)

// WithPriority schedules the observer ahead of lower-priority observers in
// every flush. Observers sharing a priority run in registration order.
func WithPriority(priority int) ObserveOption {
	return func(o *Observer) { o.priority = priority }
}

// Observe registers fn as an observer on the session and runs it immediately.
// Errors returned by fn are logged through the session logger; they do not
// stop the observer.
func Observe(s *Session, fn func() error, opts ...ObserveOption) *Observer {
	s.seq++
	o := &Observer{
		session:  s,
		fn:       fn,
		priority: defaultPriority,
		seq:      s.seq,
		keys:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	s.run(o)
	return o
}

// Stop tears the observer down: it will never run again and no longer holds
// dependency registrations. Idempotent.
func (o *Observer) Stop() {
	if o.stopped {
		return
	}
	o.stopped = true
	o.untrack()
	delete(o.session.pending, o)
}

// track records that the observer read key during its current run.
func (o *Observer) track(key string) {
	o.keys[key] = struct{}{}
}

// untrack drops every dependency registration held by the observer.
func (o *Observer) untrack() {
	for key := range o.keys {
		if set, ok := o.session.deps[key]; ok {
			delete(set, o)
			if len(set) == 0 {
				delete(o.session.deps, key)
			}
		}
	}
	clear(o.keys)
}

// sortObservers orders a flush batch by priority descending, then by
// registration sequence ascending.
func sortObservers(batch []*Observer) {
	sort.SliceStable(batch, func(i, j int) bool {
		if batch[i].priority != batch[j].priority {
			return batch[i].priority > batch[j].priority
		}
		return batch[i].seq < batch[j].seq
	})
}

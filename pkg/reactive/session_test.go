package reactive_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/reactive"
)

func TestObserve(t *testing.T) {
	t.Parallel()

	t.Run("runs immediately and on change", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		sess.Set("x", 1)

		var seen []any
		reactive.Observe(sess, func() error {
			seen = append(seen, sess.Get("x"))
			return nil
		})

		sess.Set("x", 2)
		assert.Equal(t, []any{1, 2}, seen)
	})

	t.Run("ignores values it never read", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		var runs int
		reactive.Observe(sess, func() error {
			runs++
			_ = sess.Get("x")
			return nil
		})

		sess.Set("unrelated", 1)
		assert.Equal(t, 1, runs)
	})

	t.Run("deep-equal set is a no-op", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		sess.Set("x", []string{"a"})

		var runs int
		reactive.Observe(sess, func() error {
			runs++
			_ = sess.Get("x")
			return nil
		})

		sess.Set("x", []string{"a"})
		assert.Equal(t, 1, runs)
	})

	t.Run("dependencies re-record on every run", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		sess.Set("switch", true)
		sess.Set("a", "a1")
		sess.Set("b", "b1")

		var runs int
		reactive.Observe(sess, func() error {
			runs++
			if on, _ := sess.Get("switch").(bool); on {
				_ = sess.Get("a")
			} else {
				_ = sess.Get("b")
			}
			return nil
		})
		require.Equal(t, 1, runs)

		sess.Set("switch", false) // now depends on b, not a
		require.Equal(t, 2, runs)

		sess.Set("a", "a2")
		assert.Equal(t, 2, runs)

		sess.Set("b", "b2")
		assert.Equal(t, 3, runs)
	})

	t.Run("stop is idempotent and final", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		var runs int
		o := reactive.Observe(sess, func() error {
			runs++
			_ = sess.Get("x")
			return nil
		})

		o.Stop()
		o.Stop()
		sess.Set("x", "changed")
		assert.Equal(t, 1, runs)
	})

	t.Run("errors are logged not fatal", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		var runs int
		reactive.Observe(sess, func() error {
			runs++
			_ = sess.Get("x")
			return errors.New("boom")
		})

		sess.Set("x", 1)
		assert.Equal(t, 2, runs)
	})
}

func TestBatch(t *testing.T) {
	t.Parallel()

	sess := reactive.NewSession()
	var runs int
	reactive.Observe(sess, func() error {
		runs++
		_ = sess.Get("a")
		_ = sess.Get("b")
		return nil
	})
	require.Equal(t, 1, runs)

	sess.Batch(func() {
		sess.Set("a", 1)
		sess.Set("b", 2)
	})
	assert.Equal(t, 2, runs, "batched sets coalesce into one re-run")
}

func TestIsolate(t *testing.T) {
	t.Parallel()

	sess := reactive.NewSession()
	sess.Set("x", 1)

	var runs int
	reactive.Observe(sess, func() error {
		runs++
		return sess.Isolate(func() error {
			_ = sess.Get("x")
			return nil
		})
	})
	require.Equal(t, 1, runs)

	sess.Set("x", 2)
	assert.Equal(t, 1, runs, "isolated reads register no dependencies")
}

func TestFlushOrdering(t *testing.T) {
	t.Parallel()

	t.Run("priority descending then registration order", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		var order []string
		watch := func(name string, priority int) {
			reactive.Observe(sess, func() error {
				_ = sess.Get("x")
				order = append(order, name)
				return nil
			}, reactive.WithPriority(priority))
		}

		watch("low-first", 0)
		watch("high", 100)
		watch("low-second", 0)
		order = order[:0]

		sess.Set("x", "changed")
		assert.Equal(t, []string{"high", "low-first", "low-second"}, order)
	})

	t.Run("sets during flush run in the same flush", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		var derived []any
		reactive.Observe(sess, func() error {
			if v := sess.Get("raw"); v != nil {
				sess.Set("doubled", v.(int)*2)
			}
			return nil
		})
		reactive.Observe(sess, func() error {
			derived = append(derived, sess.Get("doubled"))
			return nil
		})

		sess.Set("raw", 21)
		assert.Equal(t, []any{nil, 42}, derived)
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("root uses bare names", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		scope := sess.Scope()
		assert.Equal(t, "email", scope.FullKey("email"))
	})

	t.Run("namespaces qualify keys", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		login := sess.Scope().Namespace("login")
		deep := login.Namespace("oauth")

		assert.Equal(t, "login-email", login.FullKey("email"))
		assert.Equal(t, "login-oauth-token", deep.FullKey("token"))
	})

	t.Run("scoped reads and writes share the session", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		login := sess.Scope().Namespace("login")
		login.Set("email", "a@b.co")

		assert.Equal(t, "a@b.co", sess.Get("login-email"))
		assert.Equal(t, "a@b.co", login.Get("email"))
	})
}

func TestSessionOptions(t *testing.T) {
	t.Parallel()

	rec := &reactive.Recorder{}
	store := reactive.NewMemoryStore()
	sess := reactive.NewSession(
		reactive.WithID("sess-1"),
		reactive.WithOutbox(rec),
		reactive.WithStore(store),
	)

	assert.Equal(t, "sess-1", sess.ID())
	assert.Same(t, rec, sess.Outbox().(*reactive.Recorder))
	assert.Same(t, store, sess.Store().(*reactive.MemoryStore))
}

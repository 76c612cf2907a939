package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/reactive"
)

func TestNewFormValidator(t *testing.T) {
	t.Parallel()

	t.Run("untouched form shows no errors", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		v, err := newFormValidator(sess.Scope(), Config{})
		require.NoError(t, err)

		results, err := v.Validate()
		require.NoError(t, err)
		assert.True(t, results.OK())
		assert.NotEmpty(t, results.Fields())
	})

	t.Run("dirty empty form fails everywhere", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		scope := sess.Scope()
		scope.Set(fieldDirty, true)

		v, err := newFormValidator(scope, Config{RequireTerms: true})
		require.NoError(t, err)

		results, err := v.Validate()
		require.NoError(t, err)
		assert.Error(t, results["name"])
		assert.Error(t, results["email"])
		assert.Error(t, results["terms"])
		assert.Error(t, results["credentials-password"])
		assert.Error(t, results["credentials-confirm"])
	})

	t.Run("valid form passes", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		scope := sess.Scope()
		scope.Set(fieldDirty, true)
		scope.Set(fieldName, "Ann")
		scope.Set(fieldEmail, "ann@example.com")
		scope.Set(fieldTerms, true)
		creds := scope.Namespace(credentialsNS)
		creds.Set(fieldPassword, "secret-password")
		creds.Set(fieldConfirm, "secret-password")

		v, err := newFormValidator(scope, Config{RequireTerms: true})
		require.NoError(t, err)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("password mismatch fails confirm", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		scope := sess.Scope()
		scope.Set(fieldDirty, true)
		scope.Set(fieldName, "Ann")
		scope.Set(fieldEmail, "ann@example.com")
		scope.Set(fieldTerms, true)
		creds := scope.Namespace(credentialsNS)
		creds.Set(fieldPassword, "secret-password")
		creds.Set(fieldConfirm, "different")

		v, err := newFormValidator(scope, Config{})
		require.NoError(t, err)

		results, err := v.Validate()
		require.NoError(t, err)
		assert.EqualError(t, results["credentials-confirm"], "Passwords do not match")
		assert.NoError(t, results["credentials-password"])
	})

	t.Run("short password fails the child validator", func(t *testing.T) {
		t.Parallel()

		sess := reactive.NewSession()
		scope := sess.Scope()
		scope.Set(fieldDirty, true)
		creds := scope.Namespace(credentialsNS)
		creds.Set(fieldPassword, "short")
		creds.Set(fieldConfirm, "short")

		v, err := newFormValidator(scope, Config{PasswordMinLength: 12})
		require.NoError(t, err)

		results, err := v.Validate()
		require.NoError(t, err)
		assert.EqualError(t, results["credentials-password"], "Must be at least 12 characters")
	})

	t.Run("live feedback over the session outbox", func(t *testing.T) {
		t.Parallel()

		rec := &reactive.Recorder{}
		sess := reactive.NewSession(reactive.WithOutbox(rec))
		scope := sess.Scope()

		v, err := newFormValidator(scope, Config{})
		require.NoError(t, err)
		require.NoError(t, v.Enable())

		// First feedback is all-clear: the form is not dirty yet.
		first := rec.On(formkit.FeedbackChannel)
		require.Len(t, first, 1)
		for _, msg := range first[0].(formkit.Feedback) {
			assert.Nil(t, msg)
		}

		// A signals update marks the form dirty and re-validates.
		sess.Batch(func() {
			scope.Set(fieldEmail, "not-an-email")
			scope.Set(fieldDirty, true)
		})

		feedback := rec.On(formkit.FeedbackChannel)
		require.Len(t, feedback, 2)
		latest := feedback[1].(formkit.Feedback)
		require.NotNil(t, latest["email"])
		assert.Equal(t, "Please provide a valid email", *latest["email"])
	})
}

func TestAccepted(t *testing.T) {
	t.Parallel()

	rule := accepted("must accept")
	assert.NoError(t, rule(true))
	assert.NoError(t, rule("on"))
	assert.NoError(t, rule("true"))
	assert.EqualError(t, rule(false), "must accept")
	assert.EqualError(t, rule(""), "must accept")
	assert.EqualError(t, rule(nil), "must accept")
}

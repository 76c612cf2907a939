package signup_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/modules/signup"
)

func validForm() url.Values {
	return url.Values{
		"name":     {"Ann"},
		"email":    {"ann@example.com"},
		"terms":    {"on"},
		"password": {"secret-password"},
		"confirm":  {"secret-password"},
	}
}

func postForm(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestHandlePage(t *testing.T) {
	t.Parallel()

	m := signup.New(signup.NewMemoryStore(), signup.Config{})
	w := httptest.NewRecorder()
	m.Handle().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "data-bind-email")
}

// signalRecorder wraps a ResponseRecorder and closes written once the body
// holds a complete signals patch, so the test can cancel the request context
// without racing the handler's first SSE write.
type signalRecorder struct {
	*httptest.ResponseRecorder
	written chan struct{}
	once    sync.Once
}

func (w *signalRecorder) Write(p []byte) (int, error) {
	n, err := w.ResponseRecorder.Write(p)
	body := w.Body.String()
	if strings.Contains(body, "datastar-patch-signals") && strings.Contains(body, `"formkit"`) {
		w.once.Do(func() { close(w.written) })
	}
	return n, err
}

func TestHandleLive(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-datastar requests", func(t *testing.T) {
		t.Parallel()

		m := signup.New(signup.NewMemoryStore(), signup.Config{})
		w := httptest.NewRecorder()
		m.Handle().ServeHTTP(w, httptest.NewRequest("GET", "/live", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("streams validation feedback", func(t *testing.T) {
		t.Parallel()

		m := signup.New(signup.NewMemoryStore(), signup.Config{})

		ctx, cancel := context.WithCancel(context.Background())
		r := httptest.NewRequest("GET", "/live", nil).WithContext(ctx)
		r.Header.Set("Accept", "text/event-stream")
		w := &signalRecorder{
			ResponseRecorder: httptest.NewRecorder(),
			written:          make(chan struct{}),
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			m.Handle().ServeHTTP(w, r)
		}()
		<-w.written
		cancel()
		<-done

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"formkit"`)
	})
}

func TestHandleSignals(t *testing.T) {
	t.Parallel()

	t.Run("unknown session is gone", func(t *testing.T) {
		t.Parallel()

		m := signup.New(signup.NewMemoryStore(), signup.Config{})
		r := httptest.NewRequest("POST", "/signals?session=missing", strings.NewReader(`{"email":"x"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		m.Handle().ServeHTTP(w, r)

		assert.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		m := signup.New(signup.NewMemoryStore(), signup.Config{})
		r := httptest.NewRequest("POST", "/signals", strings.NewReader(`{broken`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		m.Handle().ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleSubmit(t *testing.T) {
	t.Parallel()

	t.Run("creates the account", func(t *testing.T) {
		t.Parallel()

		store := signup.NewMemoryStore()
		m := signup.New(store, signup.Config{RequireTerms: true, BcryptCost: 4})

		w := postForm(t, m.Handle(), validForm())
		require.Equal(t, http.StatusCreated, w.Code)

		account, err := store.ByEmail(context.Background(), "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ann", account.Name)
		assert.True(t, signup.VerifyPassword(account.PasswordHash, "secret-password"))
	})

	t.Run("validation failure returns field errors", func(t *testing.T) {
		t.Parallel()

		m := signup.New(signup.NewMemoryStore(), signup.Config{RequireTerms: true, BcryptCost: 4})

		form := validForm()
		form.Set("email", "not-an-email")
		form.Set("confirm", "different")
		w := postForm(t, m.Handle(), form)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var payload struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Equal(t, "Please provide a valid email", payload.Errors["email"])
		assert.Equal(t, "Passwords do not match", payload.Errors["credentials-confirm"])
		assert.NotContains(t, payload.Errors, "name")
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		store := signup.NewMemoryStore()
		m := signup.New(store, signup.Config{BcryptCost: 4})

		require.Equal(t, http.StatusCreated, postForm(t, m.Handle(), validForm()).Code)

		w := postForm(t, m.Handle(), validForm())
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "already registered")
	})
}

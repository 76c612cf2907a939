package signup

import "net/http"

// handlePage serves the signup form. The markup is deliberately minimal: the
// datastar attributes are the contract — field inputs bind to signals, every
// edit posts the signals to /signals, and feedback renders from the
// formkit.feedback signal subtree the server patches over SSE.
func (m *Module) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(signupPage))
}

const signupPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Sign up</title>
  <script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body data-on-load="@get('live')">
  <form data-signals="{name: '', email: '', terms: false, credentials: {password: '', confirm: ''}}"
        data-on-submit__prevent="@post('.')">
    <label>Name
      <input data-bind-name data-on-input__debounce.300ms="@post('signals')">
    </label>
    <span data-text="$formkit.feedback.name"></span>

    <label>Email
      <input data-bind-email data-on-input__debounce.300ms="@post('signals')">
    </label>
    <span data-text="$formkit.feedback.email"></span>

    <label>Password
      <input type="password" data-bind-credentials.password data-on-input__debounce.300ms="@post('signals')">
    </label>
    <span data-text="$formkit.feedback['credentials-password']"></span>

    <label>Confirm password
      <input type="password" data-bind-credentials.confirm data-on-input__debounce.300ms="@post('signals')">
    </label>
    <span data-text="$formkit.feedback['credentials-confirm']"></span>

    <label>
      <input type="checkbox" data-bind-terms data-on-change="@post('signals')">
      I accept the terms
    </label>
    <span data-text="$formkit.feedback.terms"></span>

    <button type="submit">Create account</button>
  </form>
</body>
</html>
`

package formkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/reactive"
)

// Datastar request detection constants.
const (
	// DatastarAcceptHeader is the Accept header value of a datastar request.
	DatastarAcceptHeader = "text/event-stream"

	// DatastarQueryParam is the query parameter datastar uses for signals.
	DatastarQueryParam = "datastar"
)

// IsDatastar reports whether the request comes from a datastar client: it
// accepts SSE, carries the signals query parameter, or posts a datastar
// content type.
func IsDatastar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DatastarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DatastarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// SSEOutbox delivers session messages to a datastar client as signal
// patches over an established SSE connection. A channel name of the form
// "formkit:feedback" becomes the nested signal path {"formkit": {"feedback":
// payload}}, so the browser binds feedback with data-text="$formkit.feedback.<field>".
type SSEOutbox struct {
	sse *datastar.ServerSentEventGenerator
}

// NewSSEOutbox wraps an SSE generator obtained from datastar.NewSSE.
func NewSSEOutbox(sse *datastar.ServerSentEventGenerator) *SSEOutbox {
	return &SSEOutbox{sse: sse}
}

// Send implements reactive.Outbox.
func (o *SSEOutbox) Send(channel string, payload any) error {
	signals := channelSignals(channel, payload)
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return o.sse.PatchSignals(data)
}

// channelSignals nests the payload under the channel's segments, split on
// ":". Unqualified channels map to a top-level signal of the same name.
func channelSignals(channel string, payload any) map[string]any {
	segments := strings.Split(channel, ":")
	signals := map[string]any{segments[len(segments)-1]: payload}
	for i := len(segments) - 2; i >= 0; i-- {
		signals = map[string]any{segments[i]: signals}
	}
	return signals
}

// interface guard
var _ reactive.Outbox = (*SSEOutbox)(nil)

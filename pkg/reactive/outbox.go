package reactive

// Outbox delivers messages from a session to the UI layer. The channel names
// a logical message stream; the payload must be JSON-marshalable. Transports
// (SSE, websockets, test recorders) implement this interface.
type Outbox interface {
	Send(channel string, payload any) error
}

// NopOutbox discards every message. It is the default outbox for sessions
// that have no UI attached, e.g. during submit-time validation.
type NopOutbox struct{}

func (NopOutbox) Send(channel string, payload any) error { return nil }

// Message is one recorded outbox delivery.
type Message struct {
	Channel string
	Payload any
}

// Recorder is an Outbox that keeps every message in memory, in send order.
// Intended for tests.
type Recorder struct {
	Messages []Message
}

func (r *Recorder) Send(channel string, payload any) error {
	r.Messages = append(r.Messages, Message{Channel: channel, Payload: payload})
	return nil
}

// On returns the payloads sent on the given channel, in send order.
func (r *Recorder) On(channel string) []any {
	var payloads []any
	for _, m := range r.Messages {
		if m.Channel == channel {
			payloads = append(payloads, m.Payload)
		}
	}
	return payloads
}

package formkit

// Outbox channels used by the feedback driver. The reactive session's outbox
// decides how a channel maps onto the UI transport; SSEOutbox turns them into
// nested datastar signal paths.
const (
	// FeedbackChannel carries the per-field validation feedback.
	FeedbackChannel = "formkit:feedback"

	// SetupChannel carries the one-time session setup message sent on the
	// first Enable of the session.
	SetupChannel = "formkit:setup"
)

// Feedback is the wire form of a result set: one entry per field, nil for a
// passing field and the message text for a failing one. It marshals to JSON
// with explicit nulls so the UI can clear feedback for fields that recovered.
type Feedback map[string]*string

// NewFeedback converts a result set into its wire form.
func NewFeedback(results Results) Feedback {
	fb := make(Feedback, len(results))
	for key, err := range results {
		if err == nil {
			fb[key] = nil
			continue
		}
		msg := err.Error()
		fb[key] = &msg
	}
	return fb
}

// AllClear returns a feedback message spanning the given field keys with
// every value nil. Sent on Disable to wipe any feedback previously shown.
func AllClear(fields []string) Feedback {
	fb := make(Feedback, len(fields))
	for _, key := range fields {
		fb[key] = nil
	}
	return fb
}

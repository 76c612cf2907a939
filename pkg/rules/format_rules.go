package rules

import (
	"errors"
	"net/mail"
	"net/url"

	"github.com/dmitrymomot/formkit"
)

// Email fails when the value is not a valid email address per RFC 5322
// address parsing. Combine with Optional to allow blank input.
func Email(msg ...string) formkit.Rule {
	text := message(msg, "Please provide a valid email")
	return func(value any) error {
		addr, err := mail.ParseAddress(stringValue(value))
		if err != nil || addr.Name != "" {
			return errors.New(text)
		}
		return nil
	}
}

// URL fails when the value is not an absolute http(s) URL.
func URL(msg ...string) formkit.Rule {
	text := message(msg, "Please provide a valid URL")
	return func(value any) error {
		u, err := url.Parse(stringValue(value))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New(text)
		}
		return nil
	}
}

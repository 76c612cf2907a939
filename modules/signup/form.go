package signup

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/reactive"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Field names of the signup form. Credentials live in their own namespace,
// validated by a child validator.
const (
	fieldName  = "name"
	fieldEmail = "email"
	fieldTerms = "terms"

	credentialsNS = "credentials"
	fieldPassword = "password"
	fieldConfirm  = "confirm"

	// fieldDirty is set by the first signals update; feedback stays hidden
	// until the user actually starts filling the form.
	fieldDirty = "_dirty"
)

// newFormValidator builds the validator tree for one signup session: the
// root validates name, email and terms, and a child validator owns the
// credentials sub-form. The whole tree is condition-gated on the dirty flag
// so an untouched form shows no errors.
func newFormValidator(scope *reactive.Scope, cfg Config) (*formkit.Validator, error) {
	cfg = cfg.withDefaults()

	root, err := formkit.NewValidator(scope)
	if err != nil {
		return nil, err
	}
	root.AddRule(fieldName, rules.Required()).
		AddRule(fieldEmail, rules.Required()).
		AddRule(fieldEmail, rules.Email())
	if cfg.RequireTerms {
		root.AddRule(fieldTerms, accepted("You must accept the terms"))
	}

	creds := scope.Namespace(credentialsNS)
	child, err := formkit.NewValidator(creds)
	if err != nil {
		return nil, err
	}
	child.AddRule(fieldPassword, rules.Required()).
		AddRule(fieldPassword, rules.MinLength(cfg.PasswordMinLength)).
		AddRule(fieldConfirm, rules.Required()).
		AddRule(fieldConfirm, func(value any) error {
			if fmt.Sprint(value) != fmt.Sprint(creds.Get(fieldPassword)) {
				return errors.New("Passwords do not match")
			}
			return nil
		})
	if err := root.AddValidator(child); err != nil {
		return nil, err
	}

	root.SetCondition(func() bool {
		dirty, _ := scope.Get(fieldDirty).(bool)
		return dirty
	})

	return root, nil
}

// accepted passes only for affirmative checkbox values.
func accepted(msg string) formkit.Rule {
	return func(value any) error {
		switch v := value.(type) {
		case bool:
			if v {
				return nil
			}
		case string:
			if v == "true" || v == "on" || v == "1" {
				return nil
			}
		}
		return errors.New(msg)
	}
}

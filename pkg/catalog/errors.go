package catalog

import "errors"

var (
	// ErrInvalidCatalog is returned by Parse when the YAML document does not
	// have the lang -> key -> message shape.
	ErrInvalidCatalog = errors.New("catalog: invalid catalog document")

	// ErrUnknownLanguage is returned by Parse when a language tag cannot be
	// parsed as BCP 47.
	ErrUnknownLanguage = errors.New("catalog: unknown language tag")

	// ErrNoLanguages is returned by Parse when the document defines no
	// languages, or the fallback language is missing from it.
	ErrNoLanguages = errors.New("catalog: no usable languages")
)

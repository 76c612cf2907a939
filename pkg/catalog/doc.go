// Package catalog loads localized validation message catalogs from YAML and
// negotiates the best language for a request via Accept-Language matching.
//
// A catalog document maps language tags to flat message keys:
//
//	en:
//	  validation.required: "This field is required"
//	  validation.min_length: "Must be at least %{min} characters"
//	de:
//	  validation.required: "Dieses Feld ist erforderlich"
//
// Messages may carry %{name} placeholders filled at lookup time:
//
//	cat, _ := catalog.Parse(data, "en")
//	lang := cat.Pick(r.Header.Get("Accept-Language"))
//	msg := cat.T(lang, "validation.min_length", "min", "8")
package catalog

// Package rules provides ready-made rule constructors for formkit
// validators. Each constructor returns a plain formkit.Rule closure; extra
// parameters (lengths, bounds, choice lists) are captured at construction.
//
// Every constructor accepts an optional custom message as its last variadic
// argument, overriding the built-in English default:
//
//	v.AddRule("name", rules.Required()).
//		AddRule("email", rules.Optional()).
//		AddRule("email", rules.Email()).
//		AddRule("password", rules.MinLength(8, "use at least 8 characters"))
//
// Field values arrive from the reactive session as whatever the transport
// decoded, typically strings or JSON numbers. String rules treat non-string
// values via their fmt representation; numeric rules accept Go numeric types
// and numeric strings.
package rules

package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// stringValue renders a field value as a string. Nil values become the empty
// string so presence rules treat unset and blank fields alike.
func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isBlank reports whether the value is empty after trimming whitespace.
func isBlank(value any) bool {
	return strings.TrimSpace(stringValue(value)) == ""
}

// floatValue extracts a float64 from numeric types, JSON numbers, and
// numeric strings.
func floatValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// message picks the caller's custom message when given, the default
// otherwise.
func message(custom []string, def string) string {
	if len(custom) > 0 && custom[0] != "" {
		return custom[0]
	}
	return def
}

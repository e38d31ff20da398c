package reconcile

import (
	"fmt"
	"strings"
)

// Violations is the ordered list of offending field descriptors produced by a check.
// An empty list means the input is valid.
type Violations []string

// OK reports whether no violation was found.
func (v Violations) OK() bool {
	return len(v) == 0
}

// ValidationError rejects a structurally invalid request before the engine runs.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: [%s]", e.Message, strings.Join(e.Fields, ", "))
}

// NewValidationError wraps violations with a human readable message.
func NewValidationError(message string, v Violations) *ValidationError {
	return &ValidationError{Message: message, Fields: []string(v)}
}

// ValidateReadFields checks requested read fields against the allow-list.
// A nil requested list means "no filter" and is valid unless requirePresence is set, in which
// case the violation is "fields". Every offending name is reported once, in request order.
func ValidateReadFields(requested []string, allowed []string, requirePresence bool) Violations {
	if requested == nil {
		if requirePresence {
			return Violations{"fields"}
		}
		return nil
	}

	allow := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		if f = strings.TrimSpace(f); f != "" {
			allow[f] = struct{}{}
		}
	}

	var out Violations
	seen := make(map[string]struct{})
	for _, f := range requested {
		if _, ok := allow[f]; ok {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// ValidateRequiredFields checks that every entry carries every required field, and that textual
// values are not blank. Violations are reported as "contents[i].field"; an entry that is not an
// object is reported as "contents[i]". All entries are checked.
func ValidateRequiredFields(entries []any, required []string) Violations {
	var out Violations
	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			out = append(out, fmt.Sprintf("contents[%d]", i))
			continue
		}
		for _, field := range required {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			if isMissing(entry[field]) {
				out = append(out, fmt.Sprintf("contents[%d].%s", i, field))
			}
		}
	}
	return out
}

func isMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

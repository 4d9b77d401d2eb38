package wizard

import "orderwizard/internal/core/domain/model/form"

// Violation is a validation verdict for a single field.
type Violation int

const (
	// Required means the field holds the empty string.
	Required Violation = iota + 1

	// InvalidEmail means a non-empty email does not look like local@domain.tld.
	InvalidEmail
)

// String returns the message key of the violation. Keys are the English
// messages; the i18n catalog maps them to the active locale.
func (v Violation) String() string {
	switch v {
	case Required:
		return "Required"
	case InvalidEmail:
		return "Invalid email"
	default:
		return "Invalid"
	}
}

// ErrorMap holds the violations of the step being left, keyed by field.
// An empty map means the step is valid.
type ErrorMap map[form.Field]Violation

// IsEmpty reports whether the map holds no violation.
func (m ErrorMap) IsEmpty() bool {
	return len(m) == 0
}

// Clone returns an independent copy of m. A nil map clones to an empty map.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for f, v := range m {
		out[f] = v
	}
	return out
}

// Keys returns field name to message key, ready for translation.
func (m ErrorMap) Keys() map[string]string {
	out := make(map[string]string, len(m))
	for f, v := range m {
		out[f.String()] = v.String()
	}
	return out
}

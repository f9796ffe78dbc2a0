// Package validate holds the field-level rules for inbound submissions.
// Validation never has side effects and never fails fatally: callers get
// either a normalized value or the full list of field errors.
package validate

import (
	"regexp"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)
)

func ValidEmail(s string) bool { return emailRe.MatchString(s) }
func ValidPhone(s string) bool { return phoneRe.MatchString(s) }

package services

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to its validation messages. It is returned
// by service validation and serialized as-is in 400 responses, so clients
// see an object like {"age_group": ["\"U99\" is not a valid choice."]}.
type FieldErrors map[string][]string

// Add appends a message to a field's error list.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error implements the error interface, flattening the field map into a
// deterministic single line for logs.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Shared validation messages.
const (
	msgFieldRequired = "This field is required."
	msgInvalidEmail  = "Enter a valid email address."
)

func msgMaxLength(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}

func msgInvalidChoice(v string) string {
	return fmt.Sprintf("%q is not a valid choice.", v)
}

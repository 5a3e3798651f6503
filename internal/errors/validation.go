package errors

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationBuilder collects field-level problems and turns them into a
// single InvalidArgument error. The field messages are attached under the
// "validation_errors" meta key.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make(map[string][]string),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// HasErrors reports whether any field failed
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns nil when every field passed. Otherwise the message lists the
// fields in name order so the same config always reports the same text.
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	names := slices.Sorted(maps.Keys(vb.fields))
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(vb.fields[name], ", "))
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", maps.Clone(vb.fields))
}

// ValidateRequired flags a blank string field
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateAtLeast flags a value below minValue
func ValidateAtLeast[N cmp.Ordered](field string, value, minValue N, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %v", minValue)
	}
}

// ValidateDistinct flags field when it repeats the non-empty value of other
func ValidateDistinct(field, value, other, otherValue string, vb *ValidationBuilder) {
	if value != "" && value == otherValue {
		vb.Fieldf(field, "must differ from %s", other)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if slices.Contains(allowed, value) {
		return
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

package tool

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Validation error codes surfaced on error results.
const (
	CodeInvalidJSON   = "INVALID_JSON"
	CodeMissingField  = "MISSING_FIELD"
	CodeInvalidType   = "INVALID_TYPE"
	CodeOutOfRange    = "OUT_OF_RANGE"
	CodeInvalidSchema = "INVALID_SCHEMA"
)

// ValidationError is a field-level schema violation.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// ErrorCode exposes the machine-readable code for error envelopes.
func (e *ValidationError) ErrorCode() string {
	if e == nil {
		return ""
	}
	return e.Code
}

func newValidationError(field, code, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validate checks input against schema and returns the first violation.
//
// Rules apply in precedence order: required-field presence, type conformance,
// then inclusive numeric bounds. Fields present in input but absent from the
// schema are ignored. Validate never mutates input and never substitutes
// defaults; a nil error means every declared rule holds.
func Validate(input map[string]any, schema Schema) error {
	for _, field := range schema {
		if !field.Spec.Required {
			continue
		}
		if _, ok := input[field.Name]; !ok {
			return newValidationError(field.Name, CodeMissingField, "Missing required field: %s", field.Name)
		}
	}

	for _, field := range schema {
		value, ok := input[field.Name]
		if !ok {
			continue
		}
		if !kindMatches(value, field.Spec.Kinds()) {
			return newValidationError(field.Name, CodeInvalidType, "Invalid type for field: %s", field.Name)
		}
	}

	for _, field := range schema {
		spec := field.Spec
		if spec.Min == nil && spec.Max == nil {
			continue
		}
		value, ok := input[field.Name]
		if !ok {
			continue
		}
		number, ok := asFloat(value)
		if !ok {
			continue
		}
		if spec.Min != nil && number < *spec.Min {
			return newValidationError(field.Name, CodeOutOfRange,
				"Value of field %s is below minimum %v", field.Name, *spec.Min)
		}
		if spec.Max != nil && number > *spec.Max {
			return newValidationError(field.Name, CodeOutOfRange,
				"Value of field %s is above maximum %v", field.Name, *spec.Max)
		}
	}

	return nil
}

func kindMatches(value any, kinds []Kind) bool {
	for _, kind := range kinds {
		if valueIsKind(value, kind) {
			return true
		}
	}
	return false
}

func valueIsKind(value any, kind Kind) bool {
	switch kind {
	case KindAny:
		return true
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindInteger:
		_, ok := asInteger(value)
		return ok
	case KindFloat:
		_, ok := asFloat(value)
		return ok
	case KindArray:
		_, ok := value.([]any)
		return ok
	case KindObject:
		_, ok := value.(map[string]any)
		return ok
	default:
		return false
	}
}

// asInteger reports whether value is an integral number, tolerating the
// json.Number and float64 shapes encoding/json produces.
func asInteger(value any) (int64, bool) {
	switch n := value.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil || f != float64(int64(f)) {
			return 0, false
		}
		return int64(f), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

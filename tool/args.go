package tool

// Args is a read-only view over a validated input mapping. Accessors never
// mutate the underlying map; defaulting for optional fields happens here, at
// extraction time, never during validation.
type Args struct {
	values map[string]any
}

// NewArgs wraps an already-validated input mapping.
func NewArgs(values map[string]any) Args {
	return Args{values: values}
}

// Has reports whether name was present in the input.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Raw returns the untyped value for name, nil when absent.
func (a Args) Raw(name string) any {
	return a.values[name]
}

// String returns the string value for name, empty when absent.
func (a Args) String(name string) string {
	value, _ := a.values[name].(string)
	return value
}

// StringOr returns the string value for name, or fallback when absent.
func (a Args) StringOr(name, fallback string) string {
	if value, ok := a.values[name].(string); ok {
		return value
	}
	return fallback
}

// Int returns the integer value for name, zero when absent.
func (a Args) Int(name string) int {
	value, _ := asInteger(a.values[name])
	return int(value)
}

// IntOr returns the integer value for name, or fallback when absent.
func (a Args) IntOr(name string, fallback int) int {
	if value, ok := asInteger(a.values[name]); ok {
		return int(value)
	}
	return fallback
}

// Float returns the numeric value for name, zero when absent.
func (a Args) Float(name string) float64 {
	value, _ := asFloat(a.values[name])
	return value
}

// FloatOr returns the numeric value for name, or fallback when absent.
func (a Args) FloatOr(name string, fallback float64) float64 {
	if value, ok := asFloat(a.values[name]); ok {
		return value
	}
	return fallback
}

// Bool returns the boolean value for name, false when absent.
func (a Args) Bool(name string) bool {
	value, _ := a.values[name].(bool)
	return value
}

// BoolOr returns the boolean value for name, or fallback when absent.
func (a Args) BoolOr(name string, fallback bool) bool {
	if value, ok := a.values[name].(bool); ok {
		return value
	}
	return fallback
}

// Strings returns the array value for name coerced to strings; non-string
// elements are skipped.
func (a Args) Strings(name string) []string {
	raw, ok := a.values[name].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, element := range raw {
		if s, ok := element.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

// Slice returns the untyped array value for name, nil when absent.
func (a Args) Slice(name string) []any {
	raw, _ := a.values[name].([]any)
	return raw
}

// Object returns the object value for name, nil when absent.
func (a Args) Object(name string) map[string]any {
	raw, _ := a.values[name].(map[string]any)
	return raw
}

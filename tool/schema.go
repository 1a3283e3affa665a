package tool

// Input type literals accepted by field schemas.
const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindAny     Kind = "any"
)

// Kind names a JSON value shape a field may take.
type Kind string

var validKinds = map[Kind]struct{}{
	KindString:  {},
	KindInteger: {},
	KindFloat:   {},
	KindBoolean: {},
	KindArray:   {},
	KindObject:  {},
	KindAny:     {},
}

// FieldSpec is the per-field contract checked before delegation.
//
// Type is the primary accepted kind; AltTypes widens the accepted set for
// fields that take one of several shapes (e.g. a string or an integer).
// Min/Max are inclusive numeric bounds, applied only when the field is
// present and numeric.
type FieldSpec struct {
	Type        Kind
	AltTypes    []Kind
	Required    bool
	Min         *float64
	Max         *float64
	Description string
}

// Kinds returns the full accepted-kind set in declaration order.
func (s FieldSpec) Kinds() []Kind {
	kinds := make([]Kind, 0, 1+len(s.AltTypes))
	kinds = append(kinds, s.Type)
	kinds = append(kinds, s.AltTypes...)
	return kinds
}

// Field binds a name to its spec. Schemas keep declaration order so
// validation failures and documentation stay deterministic.
type Field struct {
	Name string
	Spec FieldSpec
}

// Schema is the ordered field contract for one adapter. An empty schema
// accepts any input.
type Schema []Field

// Lookup returns the spec for a field name.
func (s Schema) Lookup(name string) (FieldSpec, bool) {
	for _, field := range s {
		if field.Name == name {
			return field.Spec, true
		}
	}
	return FieldSpec{}, false
}

// Names returns field names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, field := range s {
		names = append(names, field.Name)
	}
	return names
}

// Bound returns a pointer to v for use as a FieldSpec Min or Max.
func Bound(v float64) *float64 {
	return &v
}

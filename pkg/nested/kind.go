package nested

// FieldProvider is implemented by values that expose their named fields
// as a mapping. DeepEqual unwraps such values before comparing, but only
// when both sides implement the interface; a plain mapping is never
// unwrapped further.
type FieldProvider interface {
	Fields() map[string]any
}

// Kind is the variant of a node, resolved once per value.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindFields
)

// KindOf classifies v. Mappings win over field providers, which is moot
// in practice since map types cannot carry methods.
func KindOf(v any) Kind {
	switch v.(type) {
	case map[string]any:
		return KindMapping
	case FieldProvider:
		return KindFields
	default:
		return KindScalar
	}
}

package nested

// DeepUpdate merges src into dst in place and returns dst for chaining.
//
// For every key in src whose value is itself a mapping, the merge
// recurses into the corresponding dst branch, allocating an empty one if
// the key is absent (or holds a non-mapping value). Every other source
// value replaces the destination value wholesale; slices are values too
// and are never concatenated. src is only read, dst is mutated — callers
// that need the original must [Clone] it first. A nil dst is treated as
// an empty mapping.
func DeepUpdate(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		valueAsMap, ok := value.(map[string]any)
		if !ok {
			dst[key] = value
			continue
		}
		branch, ok := dst[key].(map[string]any)
		if !ok {
			branch = make(map[string]any, len(valueAsMap))
		}
		dst[key] = DeepUpdate(branch, valueAsMap)
	}
	return dst
}

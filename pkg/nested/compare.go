package nested

import "reflect"

// DeepEqual reports whether a and b are structurally equal.
//
// When both values are field-bearing objects they are replaced by their
// field mappings before comparison; this happens at most once per call,
// so objects nested inside mapping values are unwrapped again on the
// recursive call for their level. When exactly one side is a field
// provider no unwrapping takes place and the comparison falls through to
// direct value equality, which between an object and a non-object is
// almost always false.
//
// Two mappings are equal iff they hold the same key set and every pair
// of values compares equal; a key present on one side only fails the
// comparison immediately.
func DeepEqual(a, b any) bool {
	if KindOf(a) == KindFields && KindOf(b) == KindFields {
		a = a.(FieldProvider).Fields()
		b = b.(FieldProvider).Fields()
	}

	if KindOf(a) == KindMapping && KindOf(b) == KindMapping {
		aMap := a.(map[string]any)
		bMap := b.(map[string]any)
		for key, aValue := range aMap {
			bValue, ok := bMap[key]
			if !ok {
				return false
			}
			if !DeepEqual(aValue, bValue) {
				return false
			}
		}
		for key := range bMap {
			if _, ok := aMap[key]; !ok {
				return false
			}
		}
		return true
	}

	return leafEqual(a, b)
}

// leafEqual is a tight equality test over the leaf types that dominate
// configuration trees, with a reflect.DeepEqual tail for everything else
// (slices, structs, pointers). Interface equality via == would panic on
// uncomparable values.
func leafEqual(a, b any) bool {
	switch va := a.(type) {
	case nil:
		return b == nil
	case string:
		vb, ok := b.(string)
		return ok && va == vb
	case bool:
		vb, ok := b.(bool)
		return ok && va == vb
	case int:
		vb, ok := b.(int)
		return ok && va == vb
	case int64:
		vb, ok := b.(int64)
		return ok && va == vb
	case float64:
		vb, ok := b.(float64)
		return ok && va == vb
	}
	return reflect.DeepEqual(a, b)
}

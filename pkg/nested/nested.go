// Package nested merges and compares arbitrarily nested string-keyed
// mappings, the canonical shape of search-space and run configuration
// throughout the platform.
//
// A value handled by this package is a node: a mapping
// (map[string]any), a field-bearing object (anything implementing
// [FieldProvider]), or a scalar leaf. Merging recurses only through
// mappings; comparison additionally unwraps field-bearing objects one
// level per call. Neither operation detects cycles, and recursion depth
// equals the nesting depth of the input.
package nested

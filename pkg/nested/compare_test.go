package nested_test

import (
	"testing"

	"github.com/runforge/runkit/pkg/nested"
)

// trialState mimics a run object exposing its fields for comparison.
type trialState struct {
	ID     string
	Params map[string]any
}

func (s trialState) Fields() map[string]any {
	return map[string]any{"id": s.ID, "params": s.Params}
}

func TestDeepEqualExamples(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"scalars equal", 1, 1, true},
		{"scalars unequal", 1, 2, false},
		{"mismatched scalar types", 1, "1", false},
		{"both nil", nil, nil, true},
		{"one nil", nil, 1, false},
		{"sequences element-wise", []any{1, 2}, []any{1, 2}, true},
		{"sequences unequal length", []any{1, 2}, []any{1}, false},
		{
			"equal nested mappings",
			map[string]any{"a": map[string]any{"b": 1}},
			map[string]any{"a": map[string]any{"b": 1}},
			true,
		},
		{
			"nested mismatch",
			map[string]any{"a": map[string]any{"b": 1}},
			map[string]any{"a": map[string]any{"b": 2}},
			false,
		},
		{
			"missing key on left",
			map[string]any{"a": 1},
			map[string]any{"a": 1, "b": 2},
			false,
		},
		{
			"missing key on right",
			map[string]any{"a": 1, "b": 2},
			map[string]any{"a": 1},
			false,
		},
		{"mapping vs scalar", map[string]any{"a": 1}, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nested.DeepEqual(tc.a, tc.b); got != tc.want {
				t.Fatalf("DeepEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDeepEqualUnwrapsFieldProviders(t *testing.T) {
	a := trialState{ID: "t1", Params: map[string]any{"lr": 0.1}}
	b := trialState{ID: "t1", Params: map[string]any{"lr": 0.1}}
	if !nested.DeepEqual(a, b) {
		t.Fatal("equal field providers compared unequal")
	}

	b.Params = map[string]any{"lr": 0.2}
	if nested.DeepEqual(a, b) {
		t.Fatal("differing field providers compared equal")
	}
}

func TestDeepEqualUnwrapsPerLevel(t *testing.T) {
	// providers nested inside mapping values are unwrapped on the
	// recursive call for their level
	a := map[string]any{"state": trialState{ID: "t1"}}
	b := map[string]any{"state": trialState{ID: "t1"}}
	if !nested.DeepEqual(a, b) {
		t.Fatal("nested field providers compared unequal")
	}
}

func TestDeepEqualNoOneSidedUnwrap(t *testing.T) {
	obj := trialState{ID: "t1"}
	asMap := obj.Fields()
	// only one side exposes fields, so no unwrapping happens and the
	// object is compared directly against the mapping
	if nested.DeepEqual(obj, asMap) {
		t.Fatal("object compared equal to its own field mapping")
	}
	if nested.DeepEqual(asMap, obj) {
		t.Fatal("field mapping compared equal to the object")
	}
}

func TestKindOf(t *testing.T) {
	if got := nested.KindOf(map[string]any{}); got != nested.KindMapping {
		t.Fatalf("map classified as %v", got)
	}
	if got := nested.KindOf(trialState{}); got != nested.KindFields {
		t.Fatalf("field provider classified as %v", got)
	}
	if got := nested.KindOf(42); got != nested.KindScalar {
		t.Fatalf("scalar classified as %v", got)
	}
	if got := nested.KindOf(nil); got != nested.KindScalar {
		t.Fatalf("nil classified as %v", got)
	}
}

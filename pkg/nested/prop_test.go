package nested_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/runforge/runkit/pkg/nested"
)

// genNestedMap generates random configuration trees up to three levels
// deep with a small key alphabet, so merges regularly collide on keys.
func genNestedMap(depth int) gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(randomTree(params, depth), gopter.NoShrinker)
	}
}

func randomTree(params *gopter.GenParameters, depth int) map[string]any {
	size := int(params.Rng.Int63n(5))
	m := make(map[string]any, size)
	for i := 0; i < size; i++ {
		key := fmt.Sprintf("k%d", params.Rng.Int63n(8))
		if depth > 0 && params.Rng.Int63n(3) == 0 {
			m[key] = randomTree(params, depth-1)
			continue
		}
		switch params.Rng.Int63n(4) {
		case 0:
			m[key] = int(params.Rng.Int63n(100))
		case 1:
			m[key] = params.Rng.Float64()
		case 2:
			m[key] = fmt.Sprintf("v%d", params.Rng.Int63n(100))
		default:
			m[key] = params.Rng.Int63n(2) == 0
		}
	}
	return m
}

func mustClone(t *testing.T, m map[string]any) map[string]any {
	t.Helper()
	clone, err := nested.Clone(m)
	if err != nil {
		t.Fatalf("clone failed for %s: %v", spew.Sdump(m), err)
	}
	return clone
}

func TestDeepUpdateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("merge is idempotent", prop.ForAll(
		func(target, source map[string]any) bool {
			once := nested.DeepUpdate(mustClone(t, target), source)
			twice := nested.DeepUpdate(mustClone(t, once), source)
			return nested.DeepEqual(once, twice)
		},
		genNestedMap(3), genNestedMap(3),
	))

	properties.Property("merging into an empty map reproduces the source", prop.ForAll(
		func(source map[string]any) bool {
			return nested.DeepEqual(nested.DeepUpdate(map[string]any{}, source), source)
		},
		genNestedMap(3),
	))

	properties.Property("every source leaf wins", prop.ForAll(
		func(target, source map[string]any) bool {
			merged := nested.DeepUpdate(mustClone(t, target), source)
			return coveredBy(source, merged)
		},
		genNestedMap(3), genNestedMap(3),
	))

	properties.TestingRun(t)
}

func TestDeepEqualProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("comparison is reflexive", prop.ForAll(
		func(m map[string]any) bool {
			return nested.DeepEqual(m, m)
		},
		genNestedMap(3),
	))

	properties.Property("comparison is reflexive on clones", prop.ForAll(
		func(m map[string]any) bool {
			return nested.DeepEqual(m, mustClone(t, m))
		},
		genNestedMap(3),
	))

	properties.Property("adding a key breaks equality", prop.ForAll(
		func(m map[string]any) bool {
			grown := mustClone(t, m)
			grown["extra-key"] = 1
			return !nested.DeepEqual(m, grown)
		},
		genNestedMap(3),
	))

	properties.TestingRun(t)
}

// coveredBy reports whether every leaf of src is present with an equal
// value in merged, recursing through mapping values only.
func coveredBy(src, merged map[string]any) bool {
	for key, value := range src {
		mergedValue, ok := merged[key]
		if !ok {
			return false
		}
		srcBranch, srcIsMap := value.(map[string]any)
		mergedBranch, mergedIsMap := mergedValue.(map[string]any)
		if srcIsMap && mergedIsMap {
			if !coveredBy(srcBranch, mergedBranch) {
				return false
			}
			continue
		}
		if !nested.DeepEqual(value, mergedValue) {
			return false
		}
	}
	return true
}

package nested

import "github.com/mitchellh/copystructure"

// Clone returns a deep copy of m, so callers can keep the original while
// feeding the copy to DeepUpdate.
func Clone(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	copied, err := copystructure.Copy(m)
	if err != nil {
		return nil, err
	}
	return copied.(map[string]any), nil
}

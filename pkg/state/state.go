// Package state serializes object state into the platform's state-dict
// envelope: a mapping holding a single YAML dump of the object under the
// "yaml" key. The envelope shape keeps state dicts mergeable and
// comparable like any other nested mapping.
package state

import (
	"sigs.k8s.io/yaml"
)

// Key is the envelope key holding the YAML dump.
const Key = "yaml"

// Dict captures the exported state of val as a state dict.
func Dict(val any) (map[string]any, error) {
	dump, err := yaml.Marshal(val)
	if err != nil {
		return nil, NewDumpError(err)
	}
	return map[string]any{Key: string(dump)}, nil
}

// Load restores a state dict previously produced by [Dict] into val,
// which must be a pointer.
func Load(val any, stateDict map[string]any) error {
	raw, ok := stateDict[Key]
	if !ok {
		return NewMissingKeyError()
	}
	dump, ok := raw.(string)
	if !ok {
		return NewMalformedDumpError(raw)
	}
	if err := yaml.Unmarshal([]byte(dump), val); err != nil {
		return NewRestoreError(err)
	}
	return nil
}

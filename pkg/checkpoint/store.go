// Package checkpoint persists run state dicts per training step in a
// local bbolt database, so interrupted searches can resume from the
// latest recorded step.
package checkpoint

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketCheckpoints = []byte("checkpoints") // uint64(step) -> encoded state dict

type Store struct {
	db    *bbolt.DB
	codec Codec
}

// Open opens (or creates) the checkpoint database at path. Pass nil for
// codec to use the default MessagePack implementation.
func Open(path string, codec Codec) (*Store, error) {
	if codec == nil {
		codec = DefaultCodec
	}
	db, err := bbolt.Open(path, 0666, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, innerErr := tx.CreateBucketIfNotExists(bucketCheckpoints)
		return innerErr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create checkpoint bucket: %w", err)
	}
	return &Store{db: db, codec: codec}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put records the state dict for a step, replacing any previous record
// for the same step.
func (s *Store) Put(step uint64, stateDict map[string]any) error {
	encoded, err := s.codec.Marshal(stateDict)
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint for step %d: %w", step, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCheckpoints).Put(stepKey(step), encoded)
	})
}

// Get returns the state dict recorded for a step.
func (s *Store) Get(step uint64) (map[string]any, error) {
	var stateDict map[string]any
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketCheckpoints).Get(stepKey(step))
		if raw == nil {
			return NewNotFoundError(step)
		}
		return s.codec.Unmarshal(raw, &stateDict)
	})
	if err != nil {
		return nil, err
	}
	return stateDict, nil
}

// Latest returns the highest recorded step and its state dict.
func (s *Store) Latest() (uint64, map[string]any, error) {
	var step uint64
	var stateDict map[string]any
	err := s.db.View(func(tx *bbolt.Tx) error {
		key, raw := tx.Bucket(bucketCheckpoints).Cursor().Last()
		if key == nil {
			return NewEmptyStoreError()
		}
		step = binary.BigEndian.Uint64(key)
		return s.codec.Unmarshal(raw, &stateDict)
	})
	if err != nil {
		return 0, nil, err
	}
	return step, stateDict, nil
}

// Steps lists all recorded steps in ascending order.
func (s *Store) Steps() ([]uint64, error) {
	var steps []uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCheckpoints).ForEach(func(key, _ []byte) error {
			steps = append(steps, binary.BigEndian.Uint64(key))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func stepKey(step uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, step)
	return key
}

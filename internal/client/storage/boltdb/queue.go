package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/homevisit/internal/client/storage"
)

// PutAction stores or replaces the queued action keyed by visit id
func (s *Storage) PutAction(ctx context.Context, action *storage.OfflineAction) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		data, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}

		// Ключ - visit id: повторная постановка заменяет прежнюю запись
		if err := bucket.Put([]byte(action.VisitID), data); err != nil {
			return fmt.Errorf("failed to save action: %w", err)
		}

		return nil
	})
}

// ListActions returns all queued actions ordered by enqueue time
func (s *Storage) ListActions(ctx context.Context) ([]*storage.OfflineAction, error) {
	var actions []*storage.OfflineAction

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			action := &storage.OfflineAction{}
			if err := json.Unmarshal(v, action); err != nil {
				return fmt.Errorf("failed to unmarshal action: %w", err)
			}
			actions = append(actions, action)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	// BoltDB итерирует по ключам; восстанавливаем порядок постановки
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].EnqueuedAt.Before(actions[j].EnqueuedAt)
	})

	return actions, nil
}

// DeleteAction removes the queued action for the visit id
func (s *Storage) DeleteAction(ctx context.Context, visitID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if bucket.Get([]byte(visitID)) == nil {
			return storage.ErrActionNotFound
		}

		return bucket.Delete([]byte(visitID))
	})
}

// CountActions returns the number of queued actions
func (s *Storage) CountActions(ctx context.Context) (int, error) {
	count := 0

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

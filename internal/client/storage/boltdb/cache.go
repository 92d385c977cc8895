package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/homevisit/internal/client/storage"
	"github.com/iudanet/homevisit/internal/models"
)

// WriteRange stores the cache entry for the scope, replacing the whole
// entry atomically. A write carrying an older WrittenAt than the stored
// entry is discarded: при конкурентных запросах побеждает запись с
// более свежими данными, а не та, что завершилась последней.
func (s *Storage) WriteRange(ctx context.Context, scope models.Scope, entry *storage.CachedRange) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		key := []byte(scope)
		if existing := bucket.Get(key); existing != nil {
			var current storage.CachedRange
			// Битую запись просто перезаписываем
			if err := json.Unmarshal(existing, &current); err == nil {
				if current.WrittenAt.After(entry.WrittenAt) {
					return nil
				}
			}
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal cache entry: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save cache entry: %w", err)
		}

		return nil
	})
}

// ReadRange retrieves the cache entry for the scope applying the
// freshness policy. Malformed stored data is deleted and reported as a
// miss.
func (s *Storage) ReadRange(ctx context.Context, scope models.Scope, online bool) (*storage.CachedRange, error) {
	var entry *storage.CachedRange
	corrupt := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		data := bucket.Get([]byte(scope))
		if data == nil {
			return storage.ErrCacheMiss
		}

		entry = &storage.CachedRange{}
		if err := json.Unmarshal(data, entry); err != nil {
			corrupt = true
			return storage.ErrCacheMiss
		}

		return nil
	})

	if corrupt {
		// Повреждённая запись удаляется молча, читателю отдаём промах
		_ = s.ClearRange(ctx, scope)
	}
	if err != nil {
		return nil, err
	}

	// Онлайн устаревшая запись - промах: форсируем обновление с сервера.
	// Запись не удаляем - оффлайн она всё ещё пригодится.
	if online && entry.Age(s.now()) > storage.FreshnessWindow {
		return nil, storage.ErrCacheMiss
	}

	return entry, nil
}

// ClearRange removes the cache entry for the scope
func (s *Storage) ClearRange(ctx context.Context, scope models.Scope) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}
		return bucket.Delete([]byte(scope))
	})
}

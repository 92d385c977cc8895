package storage

import (
	"context"
	"time"

	"github.com/iudanet/homevisit/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// FreshnessWindow is the maximum cache age tolerated while online.
// Пока клиент онлайн, запись старше окна считается промахом и
// форсирует обращение к серверу; оффлайн годится запись любого
// возраста.
const FreshnessWindow = 5 * time.Minute

// CachedRange is the payload persisted per scope: the last-known query
// result partitioned by status, stamped with its write time.
// Exactly one entry exists per scope; it is overwritten, never merged.
type CachedRange struct {
	WrittenAt time.Time      `json:"written_at"`
	Pending   []models.Visit `json:"pending"`
	Completed []models.Visit `json:"completed"`
}

// Age returns how long ago the entry was written
func (c *CachedRange) Age(now time.Time) time.Duration {
	return now.Sub(c.WrittenAt)
}

// CacheStorage defines the per-scope range cache
type CacheStorage interface {
	// WriteRange atomically replaces the entry for scope. A write whose
	// WrittenAt is older than the stored entry's is discarded
	// (last-writer-by-timestamp, not last-to-complete).
	WriteRange(ctx context.Context, scope models.Scope, entry *CachedRange) error

	// ReadRange returns the entry for scope. While online an entry older
	// than FreshnessWindow is reported as ErrCacheMiss; offline any age
	// is a hit. Malformed stored data is discarded and reported as
	// ErrCacheMiss, never as a crash.
	ReadRange(ctx context.Context, scope models.Scope, online bool) (*CachedRange, error)

	// ClearRange removes the entry for scope
	ClearRange(ctx context.Context, scope models.Scope) error
}

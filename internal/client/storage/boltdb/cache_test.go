package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/homevisit/internal/client/storage"
	"github.com/iudanet/homevisit/internal/models"
)

// createTestStorage создает временное BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testEntry(writtenAt time.Time) *storage.CachedRange {
	return &storage.CachedRange{
		WrittenAt: writtenAt,
		Pending: []models.Visit{
			{ID: "visit-1", Status: models.StatusPending, PatientName: "Maria Lopez", Lat: -34.6037, Lng: -58.3816},
		},
		Completed: []models.Visit{
			{ID: "visit-2", Status: models.StatusCompleted, PatientName: "Juan Perez", Lat: -34.61, Lng: -58.37},
		},
	}
}

func TestCacheWriteRead(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	now := time.Now()
	store.SetClock(func() time.Time { return now })

	entry := testEntry(now)
	require.NoError(t, store.WriteRange(ctx, models.ScopeToday, entry))

	got, err := store.ReadRange(ctx, models.ScopeToday, true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Pending, 1)
	assert.Len(t, got.Completed, 1)
	assert.Equal(t, "visit-1", got.Pending[0].ID)
}

func TestCacheMissOnAbsentEntry(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Промах на отсутствующей записи не зависит от connectivity
	_, err := store.ReadRange(ctx, models.ScopeToday, true)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	_, err = store.ReadRange(ctx, models.ScopeToday, false)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)
}

func TestCacheFreshnessPolicy(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	writtenAt := time.Now()
	require.NoError(t, store.WriteRange(ctx, models.ScopeToday, testEntry(writtenAt)))

	// Спустя 2 минуты запись свежая и онлайн и оффлайн
	store.SetClock(func() time.Time { return writtenAt.Add(2 * time.Minute) })

	_, err := store.ReadRange(ctx, models.ScopeToday, true)
	assert.NoError(t, err)
	_, err = store.ReadRange(ctx, models.ScopeToday, false)
	assert.NoError(t, err)

	// Спустя 6 минут: онлайн - промах, оффлайн - попадание любого возраста
	store.SetClock(func() time.Time { return writtenAt.Add(6 * time.Minute) })

	_, err = store.ReadRange(ctx, models.ScopeToday, true)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	got, err := store.ReadRange(ctx, models.ScopeToday, false)
	require.NoError(t, err)
	assert.Len(t, got.Pending, 1)
}

func TestCacheCorruptEntryCleared(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пишем мусор напрямую в bucket
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCache).Put([]byte(models.ScopeToday), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.ReadRange(ctx, models.ScopeToday, false)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	// Запись удалена, а не оставлена гнить
	err = store.db.View(func(tx *bbolt.Tx) error {
		assert.Nil(t, tx.Bucket(bucketCache).Get([]byte(models.ScopeToday)))
		return nil
	})
	require.NoError(t, err)
}

func TestCacheStaleWriteDiscarded(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	now := time.Now()
	store.SetClock(func() time.Time { return now })

	newer := testEntry(now)
	require.NoError(t, store.WriteRange(ctx, models.ScopeToday, newer))

	// Более медленный конкурентный вызов с более старыми данными
	older := &storage.CachedRange{WrittenAt: now.Add(-1 * time.Minute)}
	require.NoError(t, store.WriteRange(ctx, models.ScopeToday, older))

	got, err := store.ReadRange(ctx, models.ScopeToday, true)
	require.NoError(t, err)
	assert.Len(t, got.Pending, 1, "stale write must not clobber the newer entry")
}

func TestCacheClear(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.WriteRange(ctx, models.ScopeToday, testEntry(time.Now())))
	require.NoError(t, store.ClearRange(ctx, models.ScopeToday))

	_, err := store.ReadRange(ctx, models.ScopeToday, false)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)
}

func TestCacheScopesIndependent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	now := time.Now()
	store.SetClock(func() time.Time { return now })

	require.NoError(t, store.WriteRange(ctx, models.ScopeToday, testEntry(now)))

	_, err := store.ReadRange(ctx, models.Scope("month:2024-10"), false)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	_, err = store.ReadRange(ctx, models.ScopeToday, true)
	assert.NoError(t, err)
}

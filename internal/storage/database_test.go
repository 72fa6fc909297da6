package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/learntrack/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordCompletion(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	at := time.Date(2024, 5, 8, 9, 15, 0, 0, time.UTC)

	stored, err := db.RecordCompletion(ctx, domain.CompletionLog{
		ItemID:      "1",
		Category:    domain.CategoryEnglishWords,
		TimeSlot:    domain.SlotMorning,
		CompletedAt: at,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID, "an ID should be assigned")

	entries, err := db.CompletionsBetween(ctx, at.Add(-time.Hour), at.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, stored.ID, entries[0].ID)
	assert.Equal(t, "1", entries[0].ItemID)
	assert.Equal(t, domain.CategoryEnglishWords, entries[0].Category)
	assert.Equal(t, domain.SlotMorning, entries[0].TimeSlot)
	assert.True(t, entries[0].CompletedAt.Equal(at))
}

func TestRecordCompletionKeepsGivenID(t *testing.T) {
	db := openTestDB(t)
	stored, err := db.RecordCompletion(context.Background(), domain.CompletionLog{
		ID:          "fixed",
		ItemID:      "2",
		Category:    domain.CategorySurahs,
		TimeSlot:    domain.SlotAfternoon,
		CompletedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed", stored.ID)

	_, err = db.RecordCompletion(context.Background(), stored)
	assert.Error(t, err, "duplicate IDs should be rejected")
}

func TestCompletionsBetween(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	base := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	for i, offset := range []time.Duration{-time.Hour, 0, 30 * time.Minute, 24 * time.Hour} {
		_, err := db.RecordCompletion(ctx, domain.CompletionLog{
			ItemID:      string(rune('a' + i)),
			Category:    domain.CategoryPoems,
			TimeSlot:    domain.SlotNight,
			CompletedAt: base.Add(offset),
		})
		require.NoError(t, err)
	}

	entries, err := db.CompletionsBetween(ctx, base, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 2, "lower bound inclusive, upper bound exclusive")
	assert.Equal(t, "b", entries[0].ItemID)
	assert.Equal(t, "c", entries[1].ItemID)
}

func TestOpenIsIsolated(t *testing.T) {
	ctx := context.Background()
	first := openTestDB(t)
	second := openTestDB(t)

	_, err := first.RecordCompletion(ctx, domain.CompletionLog{
		ItemID:      "1",
		Category:    domain.CategoryEnglishWords,
		TimeSlot:    domain.SlotMorning,
		CompletedAt: time.Now(),
	})
	require.NoError(t, err)

	entries, err := second.CompletionsBetween(ctx, time.Time{}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, entries, "each Open should start with an empty log")
}

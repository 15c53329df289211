package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "wirz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteStorage_RecordAndRecall(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	id, err := store.RecordInteraction(ctx, Interaction{
		CounterpartyType: "Entity",
		HasTaxID:         true,
		GrossUp:          false,
		Description:      "building rental fee 10,000,000",
		Language:         "en",
		TaxType:          "PPh Final Pasal 4 ayat (2)",
		RatePercentage:   "10",
		TaxBase:          "10000000",
		TaxAmount:        "1000000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	records, err := store.RecentInteractions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Entity", rec.CounterpartyType)
	assert.True(t, rec.HasTaxID)
	assert.Equal(t, "PPh Final Pasal 4 ayat (2)", rec.TaxType)
	assert.Equal(t, "10000000", rec.TaxBase)
	assert.Empty(t, rec.Error)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestSQLiteStorage_RecordFailure(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	_, err := store.RecordInteraction(ctx, Interaction{
		CounterpartyType: "Entity",
		Description:      "material cost 5,000,000",
		Language:         "en",
		Error:            "no taxable amount in description",
	})
	require.NoError(t, err)

	records, err := store.RecentInteractions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "no taxable amount in description", records[0].Error)
	assert.Empty(t, records[0].TaxType)
}

func TestSQLiteStorage_RecentOrderAndLimit(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.RecordInteraction(ctx, Interaction{
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
			CounterpartyType: "Entity",
			Description:      "service",
			Language:         "en",
			TaxType:          "PPh Pasal 23",
			RatePercentage:   "2",
		})
		require.NoError(t, err)
	}

	records, err := store.RecentInteractions(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first
	assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))
	assert.True(t, records[1].CreatedAt.After(records[2].CreatedAt))
}

func TestNewSQLiteStorage_RequiresPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

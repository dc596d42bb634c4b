package memory

import (
	"context"
	"testing"
	"time"

	"sampleapi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemMemory_List(t *testing.T) {
	repo := NewItemMemory()

	items, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Item{
		{ID: 1, Name: "Item 1", Description: "This is the first item", Value: 100},
		{ID: 2, Name: "Item 2", Description: "This is the second item", Value: 200},
		{ID: 3, Name: "Item 3", Description: "This is the third item", Value: 300},
	}, items)
}

func TestItemMemory_ListReturnsCopy(t *testing.T) {
	repo := NewItemMemory()
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"
	first[2].Value = -1

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Item 1", second[0].Name)
	assert.Equal(t, 300, second[2].Value)
}

func TestItemMemory_Snapshot(t *testing.T) {
	repo := NewItemMemory()

	ts, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SnapshotTimestamp, ts)

	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err, "snapshot must be a valid ISO-8601 timestamp")
}

func TestItemMemory_CancelledContext(t *testing.T) {
	repo := NewItemMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

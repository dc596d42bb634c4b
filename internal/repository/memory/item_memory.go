package memory

import (
	"context"

	"sampleapi/internal/model"
	"sampleapi/internal/repository"
)

// SnapshotTimestamp is the fixed production time of the sample data set.
const SnapshotTimestamp = "2025-09-19T00:00:00Z"

var fixture = [...]model.Item{
	{ID: 1, Name: "Item 1", Description: "This is the first item", Value: 100},
	{ID: 2, Name: "Item 2", Description: "This is the second item", Value: 200},
	{ID: 3, Name: "Item 3", Description: "This is the third item", Value: 300},
}

// itemMemory serves the fixed sample items compiled into the binary.
// It holds no mutable state and is safe for concurrent use.
type itemMemory struct{}

// NewItemMemory returns the built-in fixture repository.
func NewItemMemory() repository.ItemRepository {
	return itemMemory{}
}

func (itemMemory) List(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := make([]model.Item, len(fixture))
	copy(items, fixture[:])
	return items, nil
}

func (itemMemory) Snapshot(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return SnapshotTimestamp, nil
}

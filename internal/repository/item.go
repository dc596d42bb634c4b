// Package repository contains data access abstractions for the sample catalog.
// Implementations live in subpackages (e.g., memory) inside this directory.
package repository

import (
	"context"

	"sampleapi/internal/model"
)

// ItemRepository defines read access to the sample items.
// No business logic here — strictly data retrieval.
type ItemRepository interface {
	// List returns every item in a stable order.
	// Implementations must return a slice the caller is free to modify.
	List(ctx context.Context) ([]model.Item, error)

	// Snapshot returns the ISO-8601 timestamp describing when the data set was produced.
	Snapshot(ctx context.Context) (string, error)
}

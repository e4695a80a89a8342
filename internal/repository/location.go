package repository

import (
	"context"

	"foodkeeper/internal/model"
)

// LocationRepository defines data access for storage locations.
type LocationRepository interface {
	// List returns all locations in insertion order.
	List(ctx context.Context) ([]model.StorageLocation, error)

	// FindByID returns a location by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.StorageLocation, error)

	// Create inserts a new location and assigns its ID.
	Create(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error)

	// Update replaces the record identified by loc.ID, or returns ErrNotFound.
	Update(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error)

	// Delete removes a location by ID. The referential in-use check against
	// food items and any cascade happen atomically inside the backend:
	// if the location is referenced and force is false, Delete returns
	// *InUseError and changes nothing; if force is true, the locationId of
	// every referencing item is cleared before the location is removed.
	// The number of cleared items is returned.
	Delete(ctx context.Context, id string, force bool) (cleared int, err error)
}

// SnapshotRepository moves both collections in and out of the store wholesale.
type SnapshotRepository interface {
	// Export returns a copy of both collections.
	Export(ctx context.Context) (*model.Snapshot, error)

	// Import replaces both collections with the snapshot contents.
	// The replacement is all-or-nothing: on error the store is unchanged.
	Import(ctx context.Context, snap *model.Snapshot) error
}

package repository

import (
	"context"

	"foodkeeper/internal/model"
)

// FoodItemRepository defines data access for food items.
// Strictly store operations; validation of field combinations happens in the
// service layer.
type FoodItemRepository interface {
	// List returns all items in insertion order. A non-empty locationID
	// restricts the result to items assigned to that location.
	List(ctx context.Context, locationID string) ([]model.FoodItem, error)

	// FindByID returns an item by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.FoodItem, error)

	// Create inserts a new item and assigns its ID. The stored record is returned.
	Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error)

	// Update replaces the record identified by item.ID wholesale.
	// Returns ErrNotFound if the ID is unknown.
	Update(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error)

	// Delete removes an item by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// CountByLocation returns the number of items per location ID in a single
	// pass. Items without a location are counted under model.UnclassifiedLocation.
	CountByLocation(ctx context.Context) (map[string]int, error)
}

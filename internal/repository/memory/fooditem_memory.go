package memory

import (
	"context"
	"strconv"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// FoodItemMemory implements repository.FoodItemRepository on the shared store.
type FoodItemMemory struct {
	s *Store
}

var _ repository.FoodItemRepository = (*FoodItemMemory)(nil)

// List returns items in insertion order, optionally filtered by location.
func (r *FoodItemMemory) List(ctx context.Context, locationID string) ([]model.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if locationID == "" {
		return cloneItems(r.s.items), nil
	}
	out := make([]model.FoodItem, 0)
	for _, item := range r.s.items {
		if item.LocationID != nil && *item.LocationID == locationID {
			out = append(out, cloneItem(item))
		}
	}
	return out, nil
}

// FindByID scans for an item by ID.
func (r *FoodItemMemory) FindByID(ctx context.Context, id string) (*model.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, item := range r.s.items {
		if item.ID == id {
			c := cloneItem(item)
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create appends a new item with the next sequential ID.
func (r *FoodItemMemory) Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneItem(*item)
	stored.ID = strconv.Itoa(r.s.nextItemID)
	r.s.nextItemID++
	r.s.items = append(r.s.items, stored)

	out := cloneItem(stored)
	return &out, nil
}

// Update replaces the record wholesale at its current position.
func (r *FoodItemMemory) Update(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.items {
		if r.s.items[i].ID == item.ID {
			r.s.items[i] = cloneItem(*item)
			out := cloneItem(r.s.items[i])
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Delete removes an item by ID.
func (r *FoodItemMemory) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.items {
		if r.s.items[i].ID == id {
			r.s.items = append(r.s.items[:i], r.s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// CountByLocation tallies items per location in a single pass.
func (r *FoodItemMemory) CountByLocation(ctx context.Context) (map[string]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := make(map[string]int)
	for _, item := range r.s.items {
		key := model.UnclassifiedLocation
		if item.LocationID != nil && *item.LocationID != "" {
			key = *item.LocationID
		}
		stats[key]++
	}
	return stats, nil
}

package memory

import (
	"context"
	"strconv"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// LocationMemory implements repository.LocationRepository on the shared store.
type LocationMemory struct {
	s *Store
}

var _ repository.LocationRepository = (*LocationMemory)(nil)

// List returns all locations in insertion order.
func (r *LocationMemory) List(ctx context.Context) ([]model.StorageLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return cloneLocations(r.s.locations), nil
}

// FindByID scans for a location by ID.
func (r *LocationMemory) FindByID(ctx context.Context, id string) (*model.StorageLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, loc := range r.s.locations {
		if loc.ID == id {
			c := loc
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create appends a new location with the next sequential ID.
func (r *LocationMemory) Create(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := model.StorageLocation{
		ID:   strconv.Itoa(r.s.nextLocationID),
		Name: loc.Name,
	}
	r.s.nextLocationID++
	r.s.locations = append(r.s.locations, stored)
	return &stored, nil
}

// Update replaces the record at its current position.
func (r *LocationMemory) Update(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.locations {
		if r.s.locations[i].ID == loc.ID {
			r.s.locations[i] = model.StorageLocation{ID: loc.ID, Name: loc.Name}
			out := r.s.locations[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Delete removes a location. The in-use check, the cascade, and the removal
// all run under the store lock so no item create/update can interleave.
func (r *LocationMemory) Delete(ctx context.Context, id string, force bool) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inUse := 0
	for _, item := range r.s.items {
		if item.LocationID != nil && *item.LocationID == id {
			inUse++
		}
	}
	if inUse > 0 && !force {
		return 0, &repository.InUseError{ItemsCount: inUse}
	}

	idx := -1
	for i := range r.s.locations {
		if r.s.locations[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, repository.ErrNotFound
	}

	cleared := 0
	if inUse > 0 {
		for i := range r.s.items {
			if r.s.items[i].LocationID != nil && *r.s.items[i].LocationID == id {
				r.s.items[i].LocationID = nil
				cleared++
			}
		}
	}

	r.s.locations = append(r.s.locations[:idx], r.s.locations[idx+1:]...)
	return cleared, nil
}

// Package memory implements the repositories on plain in-memory slices.
// It is the default backend: the store is authoritative for the lifetime of
// the process and nothing is persisted.
//
// One mutex guards both collections. The location delete has to check item
// references and mutate in the same critical section, so a per-collection
// lock would not be enough.
package memory

import (
	"strconv"
	"sync"

	"foodkeeper/internal/model"
)

// DefaultLocations is the seed set present at process start.
var DefaultLocations = []model.StorageLocation{
	{ID: "1", Name: "冷蔵庫"},
	{ID: "2", Name: "冷凍庫"},
	{ID: "3", Name: "パントリー"},
	{ID: "4", Name: "食器棚"},
	{ID: "5", Name: "その他"},
}

// Store owns both in-memory collections and the ID counters.
type Store struct {
	mu             sync.Mutex
	items          []model.FoodItem
	locations      []model.StorageLocation
	nextItemID     int
	nextLocationID int
}

// NewStore creates a store seeded with the default storage locations.
func NewStore() *Store {
	s := &Store{
		items:          []model.FoodItem{},
		locations:      make([]model.StorageLocation, len(DefaultLocations)),
		nextItemID:     1,
		nextLocationID: len(DefaultLocations) + 1,
	}
	copy(s.locations, DefaultLocations)
	return s
}

// FoodItems returns the food item repository view of the store.
func (s *Store) FoodItems() *FoodItemMemory {
	return &FoodItemMemory{s: s}
}

// Locations returns the storage location repository view of the store.
func (s *Store) Locations() *LocationMemory {
	return &LocationMemory{s: s}
}

// Snapshots returns the export/import view of the store.
func (s *Store) Snapshots() *SnapshotMemory {
	return &SnapshotMemory{s: s}
}

// cloneItem copies an item, including pointer fields, so records handed out
// never alias store memory.
func cloneItem(item model.FoodItem) model.FoodItem {
	out := item
	if item.ExpiryDate != nil {
		d := *item.ExpiryDate
		out.ExpiryDate = &d
	}
	if item.LocationID != nil {
		id := *item.LocationID
		out.LocationID = &id
	}
	return out
}

func cloneItems(items []model.FoodItem) []model.FoodItem {
	out := make([]model.FoodItem, 0, len(items))
	for _, item := range items {
		out = append(out, cloneItem(item))
	}
	return out
}

func cloneLocations(locs []model.StorageLocation) []model.StorageLocation {
	out := make([]model.StorageLocation, len(locs))
	copy(out, locs)
	return out
}

// nextIDAfter returns a counter value strictly past every numeric ID in use.
// Non-numeric IDs (possible in imported snapshots) are skipped.
func nextIDAfter(ids []string) int {
	next := 1
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n >= next {
			next = n + 1
		}
	}
	return next
}

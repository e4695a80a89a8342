package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"foodkeeper/internal/model"
)

const (
	itemsCacheFile     = "food-items.json"
	locationsCacheFile = "storage-locations.json"
)

// CachedFoodItem is a food item as stored in the local snapshot cache.
// PendingSync marks entries mutated while the server was unreachable; they
// survive cache rewrites until the server reports an item with the same ID.
type CachedFoodItem struct {
	model.FoodItem
	PendingSync bool `json:"pendingSync,omitempty"`
}

// Cache mirrors the server's collections into two JSON files so list reads
// keep working while the server is unreachable.
type Cache struct {
	dir string
}

// NewCache returns a cache rooted at dir. The directory is created lazily on
// the first write.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// FoodItems returns the cached item snapshot. A missing cache file is an
// empty snapshot, not an error.
func (c *Cache) FoodItems() ([]CachedFoodItem, error) {
	var items []CachedFoodItem
	if err := c.read(itemsCacheFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// WriteFoodItems replaces the cached item snapshot.
func (c *Cache) WriteFoodItems(items []CachedFoodItem) error {
	return c.write(itemsCacheFile, items)
}

// Locations returns the cached location snapshot.
func (c *Cache) Locations() ([]model.StorageLocation, error) {
	var locations []model.StorageLocation
	if err := c.read(locationsCacheFile, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// WriteLocations replaces the cached location snapshot.
func (c *Cache) WriteLocations(locations []model.StorageLocation) error {
	return c.write(locationsCacheFile, locations)
}

// MergeFoodItems reconciles a fresh server snapshot with the cache: server
// entries win, and pendingSync entries not yet visible on the server are
// carried over. The merged snapshot is written back and returned.
func (c *Cache) MergeFoodItems(fresh []model.FoodItem) ([]CachedFoodItem, error) {
	cached, err := c.FoodItems()
	if err != nil {
		cached = nil
	}

	seen := make(map[string]struct{}, len(fresh))
	merged := make([]CachedFoodItem, 0, len(fresh))
	for _, item := range fresh {
		seen[item.ID] = struct{}{}
		merged = append(merged, CachedFoodItem{FoodItem: item})
	}
	for _, item := range cached {
		if !item.PendingSync {
			continue
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		merged = append(merged, item)
	}

	if err := c.WriteFoodItems(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (c *Cache) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

func (c *Cache) write(name string, v any) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, name), data, 0o644)
}

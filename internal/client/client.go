package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodkeeper/internal/config"
	"foodkeeper/internal/model"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status     int
	Message    string
	ItemsCount int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// FoodItemRequest carries the editable fields of an item for create/update.
type FoodItemRequest struct {
	Name             string      `json:"name"`
	ExpiryDate       *model.Date `json:"expiryDate,omitempty"`
	RegistrationDate *model.Date `json:"registrationDate,omitempty"`
	LocationID       *string     `json:"locationId,omitempty"`
	HasNoExpiry      bool        `json:"hasNoExpiry"`
}

// Client talks to the FoodKeeper API and keeps a local snapshot cache so the
// read paths degrade gracefully when the server is unreachable. The server
// stays authoritative: offline mutations are optimistic cache entries flagged
// pendingSync and are never auto-flushed back.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	now     func() time.Time
}

// New constructs a Client from configuration.
func New(cfg config.ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   NewCache(cfg.CacheDir),
		now:     time.Now,
	}
}

// ListFoodItems fetches all items, or only those in locationID when non-empty.
// On transport failure the cached snapshot is served instead.
func (c *Client) ListFoodItems(ctx context.Context, locationID string) ([]CachedFoodItem, error) {
	path := "/api/food-items"
	if locationID != "" {
		path += "?locationId=" + url.QueryEscape(locationID)
	}

	var fresh []model.FoodItem
	if err := c.do(ctx, http.MethodGet, path, nil, &fresh); err != nil {
		if !isTransportError(err) {
			return nil, err
		}
		return c.cachedFoodItems(locationID)
	}

	// A filtered read must not clobber the full snapshot.
	if locationID != "" {
		items := make([]CachedFoodItem, 0, len(fresh))
		for _, item := range fresh {
			items = append(items, CachedFoodItem{FoodItem: item})
		}
		return items, nil
	}

	return c.cache.MergeFoodItems(fresh)
}

// CreateFoodItem registers an item. Offline, the item is written to the cache
// with a local ID and pendingSync set.
func (c *Client) CreateFoodItem(ctx context.Context, req FoodItemRequest) (*CachedFoodItem, error) {
	var created model.FoodItem
	if err := c.do(ctx, http.MethodPost, "/api/food-items", req, &created); err != nil {
		if !isTransportError(err) {
			return nil, err
		}
		return c.createOffline(req)
	}
	return &CachedFoodItem{FoodItem: created}, nil
}

// UpdateFoodItem replaces an item. Offline, the cached copy is rewritten with
// pendingSync set.
func (c *Client) UpdateFoodItem(ctx context.Context, id string, req FoodItemRequest) (*CachedFoodItem, error) {
	var updated model.FoodItem
	if err := c.do(ctx, http.MethodPut, "/api/food-items/"+url.PathEscape(id), req, &updated); err != nil {
		if !isTransportError(err) {
			return nil, err
		}
		return c.updateOffline(id, req)
	}
	return &CachedFoodItem{FoodItem: updated}, nil
}

// DeleteFoodItem removes an item. Offline, only the cached copy is dropped.
func (c *Client) DeleteFoodItem(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/food-items/"+url.PathEscape(id), nil, nil); err != nil {
		if !isTransportError(err) {
			return err
		}
		return c.deleteOffline(id)
	}
	return nil
}

// ListLocations fetches all storage locations, falling back to the cache when
// the server is unreachable.
func (c *Client) ListLocations(ctx context.Context) ([]model.StorageLocation, error) {
	var locations []model.StorageLocation
	if err := c.do(ctx, http.MethodGet, "/api/storage-locations", nil, &locations); err != nil {
		if !isTransportError(err) {
			return nil, err
		}
		return c.cache.Locations()
	}

	if err := c.cache.WriteLocations(locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// CreateLocation registers a storage location. Location mutations require
// connectivity; the cache only mirrors reads.
func (c *Client) CreateLocation(ctx context.Context, name string) (*model.StorageLocation, error) {
	var created model.StorageLocation
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/api/storage-locations", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLocation renames a storage location.
func (c *Client) UpdateLocation(ctx context.Context, id, name string) (*model.StorageLocation, error) {
	var updated model.StorageLocation
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPut, "/api/storage-locations/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLocation removes a storage location. An in-use refusal surfaces as an
// *APIError carrying the referencing item count.
func (c *Client) DeleteLocation(ctx context.Context, id string, force bool) error {
	path := "/api/storage-locations/" + url.PathEscape(id)
	if force {
		path += "?forceDelete=true"
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// LocationStats returns the item count per location ID.
func (c *Client) LocationStats(ctx context.Context) (map[string]int, error) {
	var stats map[string]int
	if err := c.do(ctx, http.MethodGet, "/api/location-stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Export downloads the full dataset.
func (c *Client) Export(ctx context.Context) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := c.do(ctx, http.MethodGet, "/api/export", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Import replaces the full dataset.
func (c *Client) Import(ctx context.Context, snap *model.Snapshot) error {
	return c.do(ctx, http.MethodPost, "/api/import", snap, nil)
}

func (c *Client) cachedFoodItems(locationID string) ([]CachedFoodItem, error) {
	items, err := c.cache.FoodItems()
	if err != nil {
		return nil, err
	}
	if locationID == "" {
		return items, nil
	}
	filtered := make([]CachedFoodItem, 0, len(items))
	for _, item := range items {
		if item.LocationID != nil && *item.LocationID == locationID {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (c *Client) createOffline(req FoodItemRequest) (*CachedFoodItem, error) {
	registration := model.NewDate(c.now())
	if req.RegistrationDate != nil {
		registration = *req.RegistrationDate
	}

	item := CachedFoodItem{
		FoodItem: model.FoodItem{
			ID:               "offline-" + uuid.NewString(),
			Name:             req.Name,
			ExpiryDate:       req.ExpiryDate,
			RegistrationDate: registration,
			LocationID:       req.LocationID,
			HasNoExpiry:      req.HasNoExpiry,
		},
		PendingSync: true,
	}

	items, err := c.cache.FoodItems()
	if err != nil {
		return nil, err
	}
	if err := c.cache.WriteFoodItems(append(items, item)); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) updateOffline(id string, req FoodItemRequest) (*CachedFoodItem, error) {
	items, err := c.cache.FoodItems()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		registration := items[i].RegistrationDate
		if req.RegistrationDate != nil {
			registration = *req.RegistrationDate
		}
		items[i] = CachedFoodItem{
			FoodItem: model.FoodItem{
				ID:               id,
				Name:             req.Name,
				ExpiryDate:       req.ExpiryDate,
				RegistrationDate: registration,
				LocationID:       req.LocationID,
				HasNoExpiry:      req.HasNoExpiry,
			},
			PendingSync: true,
		}
		if err := c.cache.WriteFoodItems(items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, &APIError{Status: http.StatusNotFound, Message: "Food item not found"}
}

func (c *Client) deleteOffline(id string) error {
	items, err := c.cache.FoodItems()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return &APIError{Status: http.StatusNotFound, Message: "Food item not found"}
	}
	return c.cache.WriteFoodItems(kept)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "Request failed"}
		var payload struct {
			Message    string `json:"message"`
			ItemsCount int    `json:"itemsCount"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Message != "" {
			apiErr.Message = payload.Message
			apiErr.ItemsCount = payload.ItemsCount
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// isTransportError reports whether err means the server was unreachable, as
// opposed to the server rejecting the request.
func isTransportError(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

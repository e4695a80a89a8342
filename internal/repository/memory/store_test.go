package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

func newItem(name string, locationID string) *model.FoodItem {
	exp := model.NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	item := &model.FoodItem{
		Name:             name,
		ExpiryDate:       &exp,
		RegistrationDate: model.NewDate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
	}
	if locationID != "" {
		item.LocationID = &locationID
	}
	return item
}

func TestStoreSeedsDefaultLocations(t *testing.T) {
	s := NewStore()
	locs, err := s.Locations().List(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 5)
	assert.Equal(t, "1", locs[0].ID)
	assert.Equal(t, "冷蔵庫", locs[0].Name)
	assert.Equal(t, "その他", locs[4].Name)

	// The counter starts past the seed set.
	created, err := s.Locations().Create(context.Background(), &model.StorageLocation{Name: "地下室"})
	require.NoError(t, err)
	assert.Equal(t, "6", created.ID)
}

func TestFoodItemCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.FoodItems()

	created, err := repo.Create(ctx, newItem("牛乳", "1"))
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)

	second, err := repo.Create(ctx, newItem("卵", ""))
	require.NoError(t, err)
	assert.Equal(t, "2", second.ID)

	t.Run("list preserves insertion order", func(t *testing.T) {
		items, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "牛乳", items[0].Name)
		assert.Equal(t, "卵", items[1].Name)
	})

	t.Run("list filters by location", func(t *testing.T) {
		items, err := repo.List(ctx, "1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "牛乳", items[0].Name)

		items, err = repo.List(ctx, "999")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("find by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "牛乳", got.Name)

		_, err = repo.FindByID(ctx, "42")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("update replaces wholesale", func(t *testing.T) {
		updated := newItem("低脂肪牛乳", "2")
		updated.ID = "1"
		got, err := repo.Update(ctx, updated)
		require.NoError(t, err)
		assert.Equal(t, "低脂肪牛乳", got.Name)
		assert.Equal(t, "2", *got.LocationID)

		missing := newItem("x", "")
		missing.ID = "42"
		_, err = repo.Update(ctx, missing)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete removes immediately", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "2"))
		_, err := repo.FindByID(ctx, "2")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, "2"), repository.ErrNotFound)
	})
}

func TestReturnedRecordsDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.FoodItems()

	created, err := repo.Create(ctx, newItem("牛乳", "1"))
	require.NoError(t, err)

	// Mutating the returned record must not leak into the store.
	*created.LocationID = "5"
	created.Name = "changed"

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "牛乳", got.Name)
	assert.Equal(t, "1", *got.LocationID)
}

func TestCountByLocation(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.FoodItems()

	for _, loc := range []string{"1", "1", "2", ""} {
		_, err := repo.Create(ctx, newItem("x", loc))
		require.NoError(t, err)
	}

	stats, err := repo.CountByLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"1":                        2,
		"2":                        1,
		model.UnclassifiedLocation: 1,
	}, stats)
}

func TestLocationDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("unused location deletes directly", func(t *testing.T) {
		s := NewStore()
		cleared, err := s.Locations().Delete(ctx, "3", false)
		require.NoError(t, err)
		assert.Zero(t, cleared)

		locs, _ := s.Locations().List(ctx)
		assert.Len(t, locs, 4)
	})

	t.Run("unknown location", func(t *testing.T) {
		s := NewStore()
		_, err := s.Locations().Delete(ctx, "99", false)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("in-use without force fails with count and changes nothing", func(t *testing.T) {
		s := NewStore()
		for i := 0; i < 3; i++ {
			_, err := s.FoodItems().Create(ctx, newItem("x", "1"))
			require.NoError(t, err)
		}

		_, err := s.Locations().Delete(ctx, "1", false)
		var inUse *repository.InUseError
		require.ErrorAs(t, err, &inUse)
		assert.Equal(t, 3, inUse.ItemsCount)

		locs, _ := s.Locations().List(ctx)
		assert.Len(t, locs, 5)
		items, _ := s.FoodItems().List(ctx, "1")
		assert.Len(t, items, 3)
	})

	t.Run("force clears references and keeps items", func(t *testing.T) {
		s := NewStore()
		for i := 0; i < 3; i++ {
			_, err := s.FoodItems().Create(ctx, newItem("x", "1"))
			require.NoError(t, err)
		}
		_, err := s.FoodItems().Create(ctx, newItem("y", "2"))
		require.NoError(t, err)

		cleared, err := s.Locations().Delete(ctx, "1", true)
		require.NoError(t, err)
		assert.Equal(t, 3, cleared)

		locs, _ := s.Locations().List(ctx)
		assert.Len(t, locs, 4)

		items, _ := s.FoodItems().List(ctx, "")
		assert.Len(t, items, 4)
		for _, item := range items {
			if item.Name == "x" {
				assert.Nil(t, item.LocationID)
			}
		}
		// The unrelated reference survives.
		others, _ := s.FoodItems().List(ctx, "2")
		assert.Len(t, others, 1)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.FoodItems().Create(ctx, newItem("牛乳", "1"))
	require.NoError(t, err)
	_, err = s.FoodItems().Create(ctx, newItem("塩", ""))
	require.NoError(t, err)

	snap, err := s.Snapshots().Export(ctx)
	require.NoError(t, err)
	require.Len(t, snap.FoodItems, 2)
	require.Len(t, snap.StorageLocations, 5)

	// Import into a fresh store reproduces the collection pair.
	fresh := NewStore()
	require.NoError(t, fresh.Snapshots().Import(ctx, snap))

	got, err := fresh.Snapshots().Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	// Counters advance past the imported IDs.
	created, err := fresh.FoodItems().Create(ctx, newItem("卵", ""))
	require.NoError(t, err)
	assert.Equal(t, "3", created.ID)
	loc, err := fresh.Locations().Create(ctx, &model.StorageLocation{Name: "倉庫"})
	require.NoError(t, err)
	assert.Equal(t, "6", loc.ID)
}

package memory

import (
	"context"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// SnapshotMemory implements repository.SnapshotRepository on the shared store.
type SnapshotMemory struct {
	s *Store
}

var _ repository.SnapshotRepository = (*SnapshotMemory)(nil)

// Export copies both collections out under one lock acquisition, so the pair
// is a consistent point-in-time view.
func (r *SnapshotMemory) Export(ctx context.Context) (*model.Snapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return &model.Snapshot{
		FoodItems:        cloneItems(r.s.items),
		StorageLocations: cloneLocations(r.s.locations),
	}, nil
}

// Import replaces both collections wholesale and moves the ID counters past
// the highest numeric ID seen, so subsequent creates never collide.
func (r *SnapshotMemory) Import(ctx context.Context, snap *model.Snapshot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.items = cloneItems(snap.FoodItems)
	r.s.locations = cloneLocations(snap.StorageLocations)

	itemIDs := make([]string, 0, len(r.s.items))
	for _, item := range r.s.items {
		itemIDs = append(itemIDs, item.ID)
	}
	locIDs := make([]string, 0, len(r.s.locations))
	for _, loc := range r.s.locations {
		locIDs = append(locIDs, loc.ID)
	}
	r.s.nextItemID = nextIDAfter(itemIDs)
	r.s.nextLocationID = nextIDAfter(locIDs)
	return nil
}

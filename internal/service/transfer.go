package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
	"foodkeeper/internal/storage"
)

// TransferService moves the full data set in and out of the store: JSON
// export/import over the API, plus optional snapshot backups to an
// S3-compatible archive.
type TransferService interface {
	// Export returns a consistent snapshot of both collections.
	Export(ctx context.Context) (*model.Snapshot, error)

	// Import validates the payload shape and replaces both collections
	// wholesale. Validation happens before any mutation.
	Import(ctx context.Context, snap *model.Snapshot) error

	// Backup exports a snapshot and archives it to object storage under a
	// timestamped key, which is returned. Fails with ErrBackupUnavailable
	// when no archive is configured.
	Backup(ctx context.Context) (string, error)

	// RestoreBackup fetches an archived snapshot by key and imports it.
	RestoreBackup(ctx context.Context, key string) error
}

type transferService struct {
	snapshots repository.SnapshotRepository
	archive   storage.Storage // nil when no archive is configured
	now       func() time.Time
}

// NewTransferService constructs a new TransferService. archive may be nil,
// in which case Backup and RestoreBackup report ErrBackupUnavailable.
func NewTransferService(snapshots repository.SnapshotRepository, archive storage.Storage) TransferService {
	return &transferService{
		snapshots: snapshots,
		archive:   archive,
		now:       time.Now,
	}
}

// checkSnapshot rejects payloads missing either collection and normalizes the
// expiry invariant on every item before anything is written.
func checkSnapshot(snap *model.Snapshot) error {
	if snap == nil || snap.FoodItems == nil || snap.StorageLocations == nil {
		return &ValidationError{Message: "Invalid data format"}
	}
	for i := range snap.FoodItems {
		item := &snap.FoodItems[i]
		if item.HasNoExpiry {
			item.ExpiryDate = nil
		} else if item.ExpiryDate == nil {
			item.HasNoExpiry = true
		}
	}
	return nil
}

func (s *transferService) Export(ctx context.Context) (*model.Snapshot, error) {
	return s.snapshots.Export(ctx)
}

func (s *transferService) Import(ctx context.Context, snap *model.Snapshot) error {
	if err := checkSnapshot(snap); err != nil {
		return err
	}
	return s.snapshots.Import(ctx, snap)
}

func (s *transferService) Backup(ctx context.Context) (string, error) {
	if s.archive == nil {
		return "", ErrBackupUnavailable
	}

	snap, err := s.snapshots.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("export snapshot: %w", err)
	}
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	// Same key pattern as the downloadable export filename.
	stamp := s.now().UTC().Format("2006-01-02T15-04-05")
	key := fmt.Sprintf("backups/food-expiry-data-%s.json", stamp)

	_, err = s.archive.Put(ctx, key, bytes.NewReader(payload), storage.PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("archive snapshot: %w", err)
	}
	return key, nil
}

func (s *transferService) RestoreBackup(ctx context.Context, key string) error {
	if s.archive == nil {
		return ErrBackupUnavailable
	}

	rc, _, err := s.archive.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("fetch snapshot %s: %w", key, err)
	}
	defer rc.Close()

	var snap model.Snapshot
	if err := json.NewDecoder(rc).Decode(&snap); err != nil {
		return &ValidationError{Message: "Invalid data format"}
	}
	return s.Import(ctx, &snap)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// SnapshotPostgres is a PostgreSQL implementation of repository.SnapshotRepository.
type SnapshotPostgres struct {
	db *sql.DB
}

// NewSnapshotPostgres creates a new SnapshotPostgres repository.
func NewSnapshotPostgres(db *sql.DB) *SnapshotPostgres {
	return &SnapshotPostgres{db: db}
}

var _ repository.SnapshotRepository = (*SnapshotPostgres)(nil)

// Export reads both collections inside one transaction for a consistent pair.
func (r *SnapshotPostgres) Export(ctx context.Context) (*model.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	snap := &model.Snapshot{
		FoodItems:        make([]model.FoodItem, 0),
		StorageLocations: make([]model.StorageLocation, 0),
	}

	rows, err := tx.QueryContext(ctx, `SELECT `+foodItemColumns+` FROM food_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		snap.FoodItems = append(snap.FoodItems, *item)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = tx.QueryContext(ctx, `SELECT id, name FROM storage_locations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		snap.StorageLocations = append(snap.StorageLocations, *loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}

// Import replaces both collections wholesale in one transaction, preserving
// the snapshot IDs and bumping the sequences past them.
func (r *SnapshotPostgres) Import(ctx context.Context, snap *model.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM food_items`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM storage_locations`); err != nil {
		return err
	}

	const qLoc = `INSERT INTO storage_locations (id, name) VALUES ($1, $2)`
	for _, loc := range snap.StorageLocations {
		n, err := parseID(loc.ID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, qLoc, n, loc.Name); err != nil {
			return err
		}
	}

	const qItem = `
		INSERT INTO food_items (id, name, expiry_date, registration_date, location_id, has_no_expiry)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range snap.FoodItems {
		n, err := parseID(item.ID)
		if err != nil {
			return err
		}
		expiry, locationID, err := foodItemArgs(&item)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, qItem,
			n,
			item.Name,
			expiry,
			item.RegistrationDate.Time,
			locationID,
			item.HasNoExpiry,
		); err != nil {
			return err
		}
	}

	const qSeq = `SELECT setval($1, COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`
	for _, tbl := range []string{"food_items", "storage_locations"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(qSeq, tbl), tbl+"_id_seq"); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

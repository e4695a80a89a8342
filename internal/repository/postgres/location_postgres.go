package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// LocationPostgres is a PostgreSQL implementation of repository.LocationRepository.
type LocationPostgres struct {
	db *sql.DB
}

// NewLocationPostgres creates a new LocationPostgres repository.
func NewLocationPostgres(db *sql.DB) *LocationPostgres {
	return &LocationPostgres{db: db}
}

var _ repository.LocationRepository = (*LocationPostgres)(nil)

func scanLocation(row rowScanner) (*model.StorageLocation, error) {
	var (
		id  int64
		loc model.StorageLocation
	)
	if err := row.Scan(&id, &loc.Name); err != nil {
		return nil, err
	}
	loc.ID = formatID(id)
	return &loc, nil
}

// List returns all locations ordered by ID.
func (r *LocationPostgres) List(ctx context.Context) ([]model.StorageLocation, error) {
	const q = `SELECT id, name FROM storage_locations ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locs := make([]model.StorageLocation, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locs = append(locs, *loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return locs, nil
}

// FindByID fetches a single location by its ID.
func (r *LocationPostgres) FindByID(ctx context.Context, id string) (*model.StorageLocation, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT id, name FROM storage_locations WHERE id = $1`
	loc, err := scanLocation(r.db.QueryRowContext(ctx, q, n))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return loc, nil
}

// Create inserts a new location and returns it with its assigned ID.
func (r *LocationPostgres) Create(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error) {
	const q = `INSERT INTO storage_locations (name) VALUES ($1) RETURNING id, name`
	return scanLocation(r.db.QueryRowContext(ctx, q, loc.Name))
}

// Update replaces the location name.
func (r *LocationPostgres) Update(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error) {
	n, err := parseID(loc.ID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `UPDATE storage_locations SET name = $2 WHERE id = $1 RETURNING id, name`
	updated, err := scanLocation(r.db.QueryRowContext(ctx, q, n, loc.Name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a location. The in-use check, the cascade, and the removal
// run in one transaction so item writes cannot interleave.
func (r *LocationPostgres) Delete(ctx context.Context, id string, force bool) (int, error) {
	n, err := parseID(id)
	if err != nil {
		return 0, repository.ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var inUse int
	const qCount = `SELECT COUNT(*) FROM food_items WHERE location_id = $1`
	if err := tx.QueryRowContext(ctx, qCount, n).Scan(&inUse); err != nil {
		return 0, err
	}
	if inUse > 0 && !force {
		return 0, &repository.InUseError{ItemsCount: inUse}
	}

	cleared := 0
	if inUse > 0 {
		const qClear = `UPDATE food_items SET location_id = NULL WHERE location_id = $1`
		res, err := tx.ExecContext(ctx, qClear, n)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		cleared = int(affected)
	}

	const qDelete = `DELETE FROM storage_locations WHERE id = $1`
	res, err := tx.ExecContext(ctx, qDelete, n)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit location delete: %w", err)
	}
	return cleared, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// FoodItemPostgres is a PostgreSQL implementation of repository.FoodItemRepository.
type FoodItemPostgres struct {
	db *sql.DB
}

// NewFoodItemPostgres creates a new FoodItemPostgres repository.
func NewFoodItemPostgres(db *sql.DB) *FoodItemPostgres {
	return &FoodItemPostgres{db: db}
}

var _ repository.FoodItemRepository = (*FoodItemPostgres)(nil)

// List returns items ordered by ID, optionally filtered by location.
func (r *FoodItemPostgres) List(ctx context.Context, locationID string) ([]model.FoodItem, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if locationID == "" {
		const q = `SELECT ` + foodItemColumns + ` FROM food_items ORDER BY id`
		rows, err = r.db.QueryContext(ctx, q)
	} else {
		locID, perr := parseID(locationID)
		if perr != nil {
			// An unknown-format location ID matches nothing.
			return []model.FoodItem{}, nil
		}
		const q = `SELECT ` + foodItemColumns + ` FROM food_items WHERE location_id = $1 ORDER BY id`
		rows, err = r.db.QueryContext(ctx, q, locID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FoodItem, 0)
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single item by its ID.
func (r *FoodItemPostgres) FindByID(ctx context.Context, id string) (*model.FoodItem, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT ` + foodItemColumns + ` FROM food_items WHERE id = $1`
	item, err := scanFoodItem(r.db.QueryRowContext(ctx, q, n))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create inserts a new row and returns the stored record with its assigned ID.
func (r *FoodItemPostgres) Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	expiry, locationID, err := foodItemArgs(item)
	if err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO food_items (name, expiry_date, registration_date, location_id, has_no_expiry)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + foodItemColumns
	return scanFoodItem(r.db.QueryRowContext(ctx, q,
		item.Name,
		expiry,
		item.RegistrationDate.Time,
		locationID,
		item.HasNoExpiry,
	))
}

// Update replaces the record wholesale.
func (r *FoodItemPostgres) Update(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	n, err := parseID(item.ID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	expiry, locationID, err := foodItemArgs(item)
	if err != nil {
		return nil, err
	}
	const q = `
		UPDATE food_items
		SET name = $2, expiry_date = $3, registration_date = $4, location_id = $5, has_no_expiry = $6
		WHERE id = $1
		RETURNING ` + foodItemColumns
	updated, err := scanFoodItem(r.db.QueryRowContext(ctx, q,
		n,
		item.Name,
		expiry,
		item.RegistrationDate.Time,
		locationID,
		item.HasNoExpiry,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes an item by ID.
func (r *FoodItemPostgres) Delete(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return repository.ErrNotFound
	}
	const q = `DELETE FROM food_items WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, n)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountByLocation tallies items per location in one aggregate query.
func (r *FoodItemPostgres) CountByLocation(ctx context.Context) (map[string]int, error) {
	const q = `
		SELECT COALESCE(location_id::TEXT, $1) AS loc, COUNT(*)
		FROM food_items
		GROUP BY loc
	`
	rows, err := r.db.QueryContext(ctx, q, model.UnclassifiedLocation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var (
			loc   string
			count int
		)
		if err := rows.Scan(&loc, &count); err != nil {
			return nil, err
		}
		stats[loc] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

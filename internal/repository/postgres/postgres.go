// Package postgres implements the repositories on PostgreSQL via database/sql
// with parameterized queries. It is the optional durable backend; the memory
// backend stays the default when no database is configured.
package postgres

import (
	"database/sql"
	"fmt"
	"strconv"

	"foodkeeper/internal/model"
)

// Entity IDs are BIGSERIAL columns but travel as opaque strings everywhere
// above this layer.

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return n, nil
}

func formatID(n int64) string {
	return strconv.FormatInt(n, 10)
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const foodItemColumns = "id, name, expiry_date, registration_date, location_id, has_no_expiry"

func scanFoodItem(row rowScanner) (*model.FoodItem, error) {
	var (
		id         int64
		item       model.FoodItem
		expiry     sql.NullTime
		registered sql.NullTime
		locationID sql.NullInt64
	)
	if err := row.Scan(&id, &item.Name, &expiry, &registered, &locationID, &item.HasNoExpiry); err != nil {
		return nil, err
	}
	item.ID = formatID(id)
	if expiry.Valid {
		d := model.NewDate(expiry.Time)
		item.ExpiryDate = &d
	}
	if registered.Valid {
		item.RegistrationDate = model.NewDate(registered.Time)
	}
	if locationID.Valid {
		s := formatID(locationID.Int64)
		item.LocationID = &s
	}
	return &item, nil
}

func foodItemArgs(item *model.FoodItem) (expiry sql.NullTime, locationID sql.NullInt64, err error) {
	if item.ExpiryDate != nil {
		expiry = sql.NullTime{Time: item.ExpiryDate.Time, Valid: true}
	}
	if item.LocationID != nil && *item.LocationID != "" {
		n, perr := parseID(*item.LocationID)
		if perr != nil {
			return expiry, locationID, perr
		}
		locationID = sql.NullInt64{Int64: n, Valid: true}
	}
	return expiry, locationID, nil
}

package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_storage_locations",
		SQL: `CREATE TABLE IF NOT EXISTS storage_locations (
  id   BIGSERIAL PRIMARY KEY,
  name TEXT      NOT NULL
);`,
	},
	{
		Name: "create_table_food_items",
		SQL: `CREATE TABLE IF NOT EXISTS food_items (
  id                BIGSERIAL   PRIMARY KEY,
  name              TEXT        NOT NULL,
  expiry_date       TIMESTAMPTZ,
  registration_date TIMESTAMPTZ NOT NULL DEFAULT now(),
  location_id       BIGINT      REFERENCES storage_locations (id) ON DELETE SET NULL,
  has_no_expiry     BOOLEAN     NOT NULL DEFAULT FALSE,
  CHECK (NOT (has_no_expiry AND expiry_date IS NOT NULL))
);`,
	},
	{
		Name: "create_index_food_items_location_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_food_items_location_id ON food_items (location_id);`,
	},
	{
		Name: "create_index_food_items_expiry_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_food_items_expiry_date ON food_items (expiry_date);`,
	},
	{
		Name: "seed_default_storage_locations",
		SQL: `INSERT INTO storage_locations (name)
SELECT unnest(ARRAY['冷蔵庫', '冷凍庫', 'パントリー', '食器棚', 'その他'])
WHERE NOT EXISTS (SELECT 1 FROM storage_locations);`,
	},
}

// EnsureMigrated checks if the 'food_items' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.food_items') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}

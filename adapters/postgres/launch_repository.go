package postgres

import (
	"context"
	"fmt"

	"launchdash/domain/launch"
	"launchdash/internal/errors"
	"launchdash/internal/migration"
	"launchdash/ports"

	"github.com/jmoiron/sqlx"
)

// insertBatchSize keeps each INSERT well under the 65535 bind parameter limit
const insertBatchSize = 1000

// launchRepository implements ports.LaunchRepository on a single table
type launchRepository struct {
	db    *sqlx.DB
	table string
}

// NewLaunchRepository creates a launch repository over table
func NewLaunchRepository(db *sqlx.DB, table string) (ports.LaunchRepository, error) {
	if !migration.ValidTableName(table) {
		return nil, errors.ConfigInvalid(fmt.Sprintf("invalid table name %q", table))
	}
	return &launchRepository{db: db, table: table}, nil
}

// Describe names the source
func (r *launchRepository) Describe() string {
	return "postgres:" + r.table
}

// ListRecords returns every record in insertion order
func (r *launchRepository) ListRecords(ctx context.Context) ([]launch.Record, error) {
	query := fmt.Sprintf(`SELECT
		launch_site, flight_number, payload_mass_kg, class, booster_version_category,
		COALESCE(booster_version, '') AS booster_version
	FROM %s ORDER BY id`, r.table)

	var records []launch.Record
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, errors.DatabaseError("failed to list launch records", err)
	}
	return records, nil
}

// ReplaceRecords swaps the table contents for records in one transaction
func (r *launchRepository) ReplaceRecords(ctx context.Context, records []launch.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, r.table)); err != nil {
		return errors.DatabaseError("failed to clear launch records", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (
		launch_site, flight_number, payload_mass_kg, class, booster_version_category, booster_version
	) VALUES (
		:launch_site, :flight_number, :payload_mass_kg, :class, :booster_version_category, :booster_version
	)`, r.table)

	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		if _, err := tx.NamedExecContext(ctx, query, records[start:end]); err != nil {
			return errors.DatabaseError(fmt.Sprintf("failed to insert records %d-%d", start, end-1), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("failed to commit launch records", err)
	}
	return nil
}

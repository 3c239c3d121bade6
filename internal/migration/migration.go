package migration

import (
	"context"
	"fmt"
	"regexp"

	"launchdash/internal/errors"

	"github.com/jmoiron/sqlx"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// ValidTableName reports whether name can be spliced into DDL unquoted
func ValidTableName(name string) bool {
	return identifierPattern.MatchString(name)
}

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner creates the launch records schema
type MigrationRunner struct {
	version string
	table   string
}

// NewRunner creates a migration runner for the given records table
func NewRunner(table string) (*MigrationRunner, error) {
	if !ValidTableName(table) {
		return nil, errors.ConfigInvalid(fmt.Sprintf("invalid table name %q", table))
	}
	return &MigrationRunner{
		version: "1.0.0",
		table:   table,
	}, nil
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Statements returns the DDL Run executes, in order
func (r *MigrationRunner) Statements() []string {
	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			flight_number INTEGER NOT NULL,
			launch_site TEXT NOT NULL,
			payload_mass_kg DOUBLE PRECISION NOT NULL CHECK (payload_mass_kg >= 0),
			class SMALLINT NOT NULL CHECK (class IN (0, 1)),
			booster_version TEXT,
			booster_version_category TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`, r.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_launch_site ON %s (launch_site)`, r.table, r.table),
	}
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range r.Statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.DatabaseError(fmt.Sprintf("migration %s failed", r.version), err)
		}
	}
	return nil
}

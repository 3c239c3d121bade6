package dataset

import (
	"context"
	"os"
	"time"

	"launchdash/adapters/excel"
	"launchdash/adapters/postgres"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/errors"
	"launchdash/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var logger = internal.DefaultLogger.With("dataset")

// Load builds the dataset from the configured source. It is all-or-nothing:
// the caller treats any error as fatal.
func Load(ctx context.Context, cfg *config.Config) (*launch.Dataset, error) {
	start := time.Now()

	var (
		ds  *launch.Dataset
		err error
	)
	switch cfg.Data.Source {
	case config.SourcePostgres:
		ds, err = loadFromPostgres(ctx, cfg.Database.URL, cfg.Data.Table)
	default:
		ds, err = LoadFile(cfg.Data.File)
	}
	if err != nil {
		return nil, err
	}

	b := ds.Bounds()
	logger.Info("loaded %d launch records from %s in %s (sites=%d, payload=[%.1f, %.1f])",
		ds.Len(), ds.Source(), time.Since(start).Round(time.Millisecond), len(ds.Sites()), b.Min, b.Max)
	return ds, nil
}

// LoadFile reads a CSV or XLSX launch records file
func LoadFile(path string) (*launch.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.DatasetMissing(path, err)
	}

	table, err := excel.NewDataReader(path).ReadData()
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatasetMalformed, errors.Wrapf(err, "failed to read %s", path))
	}

	ds, err := FromTable(table, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return ds, nil
}

// LoadFromReader builds the dataset from any record reader
func LoadFromReader(ctx context.Context, reader ports.LaunchRecordReader) (*launch.Dataset, error) {
	records, err := reader.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", reader.Describe())
	}
	ds, err := FromRecords(records, reader.Describe())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", reader.Describe())
	}
	return ds, nil
}

func loadFromPostgres(ctx context.Context, url, table string) (*launch.Dataset, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}
	// records are copied into memory, the connection is not kept
	defer db.Close()

	repo, err := postgres.NewLaunchRepository(db, table)
	if err != nil {
		return nil, err
	}
	return LoadFromReader(ctx, repo)
}

package ports

import (
	"context"

	"launchdash/domain/launch"
)

// LaunchRecordReader supplies the launch records a dataset is built from
type LaunchRecordReader interface {
	// ListRecords returns every record in a stable order
	ListRecords(ctx context.Context) ([]launch.Record, error)
	// Describe names the source for logs and the page footer
	Describe() string
}

// LaunchRepository is a LaunchRecordReader that can also be seeded
type LaunchRepository interface {
	LaunchRecordReader
	// ReplaceRecords deletes existing rows and inserts records in one transaction
	ReplaceRecords(ctx context.Context, records []launch.Record) error
}

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"launchdash/adapters/excel"
	"launchdash/domain/launch"
	"launchdash/internal/errors"

	"github.com/montanaflynn/stats"
)

// FromTable converts a text table into launch records. Every required column
// must be present and every row must parse; one bad cell fails the whole load.
// Columns other than the launch columns (such as a pandas index) are ignored.
func FromTable(table *excel.Table, source string) (*launch.Dataset, error) {
	var missing []string
	for _, col := range launch.RequiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, strconv.Quote(col))
		}
	}
	if len(missing) > 0 {
		return nil, errors.DatasetMalformed("missing required columns: " + strings.Join(missing, ", "))
	}

	records := make([]launch.Record, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec, err := parseRow(row)
		if err != nil {
			// header is line 1
			return nil, errors.Wrapf(err, "line %d", i+2)
		}
		records = append(records, rec)
	}

	return FromRecords(records, source)
}

// FromRecords validates records and computes the payload bounds
func FromRecords(records []launch.Record, source string) (*launch.Dataset, error) {
	if len(records) == 0 {
		return nil, errors.DatasetMalformed("dataset has no launch records")
	}

	payloads := make([]float64, len(records))
	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		payloads[i] = rec.PayloadMassKg
	}

	bounds, err := payloadBounds(payloads)
	if err != nil {
		return nil, err
	}
	return launch.NewDataset(source, records, bounds), nil
}

func payloadBounds(payloads []float64) (launch.Bounds, error) {
	lo, err := stats.Min(payloads)
	if err != nil {
		return launch.Bounds{}, errors.Wrap(err, "failed to compute minimum payload")
	}
	hi, err := stats.Max(payloads)
	if err != nil {
		return launch.Bounds{}, errors.Wrap(err, "failed to compute maximum payload")
	}
	return launch.Bounds{Min: lo, Max: hi}, nil
}

func parseRow(row excel.RawRowData) (launch.Record, error) {
	flight, err := parseInt(row[launch.ColumnFlightNumber])
	if err != nil {
		return launch.Record{}, columnError(launch.ColumnFlightNumber, row, err)
	}
	payload, err := strconv.ParseFloat(row[launch.ColumnPayloadMass], 64)
	if err != nil {
		return launch.Record{}, columnError(launch.ColumnPayloadMass, row, err)
	}
	class, err := parseInt(row[launch.ColumnClass])
	if err != nil {
		return launch.Record{}, columnError(launch.ColumnClass, row, err)
	}

	rec := launch.Record{
		Site:            row[launch.ColumnSite],
		FlightNumber:    flight,
		PayloadMassKg:   payload,
		Class:           class,
		BoosterCategory: row[launch.ColumnBoosterCategory],
		BoosterVersion:  row[launch.ColumnBoosterVersion],
	}
	return rec, validateRecord(rec)
}

func validateRecord(rec launch.Record) error {
	switch {
	case rec.Site == "":
		return errors.DatasetMalformed(launch.ColumnSite + " is empty")
	case rec.Class != launch.ClassFailure && rec.Class != launch.ClassSuccess:
		return errors.DatasetMalformed(fmt.Sprintf("%s must be 0 or 1, got %d", launch.ColumnClass, rec.Class))
	case math.IsNaN(rec.PayloadMassKg) || math.IsInf(rec.PayloadMassKg, 0) || rec.PayloadMassKg < 0:
		return errors.DatasetMalformed(fmt.Sprintf("%s must be a non-negative number, got %v", launch.ColumnPayloadMass, rec.PayloadMassKg))
	}
	return nil
}

// parseInt accepts "3" and integral floats such as "3.0", which spreadsheet exports produce
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

func columnError(column string, row excel.RawRowData, cause error) error {
	return &errors.AppError{
		Code:    errors.CodeDatasetMalformed,
		Message: fmt.Sprintf("invalid %s value %q", column, row[column]),
		Cause:   cause,
	}
}

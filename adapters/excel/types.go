package excel

// RawRowData represents one data row as header -> trimmed cell text
type RawRowData map[string]string

// Table is a spreadsheet or CSV file read as text
type Table struct {
	Headers []string     // Column headers, trimmed
	Rows    []RawRowData // Data rows in file order
	Sheet   string       // Sheet the rows came from; empty for CSV
}

// HasColumn reports whether header is one of the table's columns
func (t *Table) HasColumn(header string) bool {
	for _, h := range t.Headers {
		if h == header {
			return true
		}
	}
	return false
}

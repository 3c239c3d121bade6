package launch

import (
	"time"

	"launchdash/domain/core"
)

// Site selector sentinel and its dropdown label
const (
	AllSites      = "ALL"
	AllSitesLabel = "All Sites"
)

// Column names of the launch records file
const (
	ColumnSite            = "Launch Site"
	ColumnFlightNumber    = "Flight Number"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnClass           = "class"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnBoosterVersion  = "Booster Version"
)

// RequiredColumns must all be present for a file to load
var RequiredColumns = []string{
	ColumnSite,
	ColumnFlightNumber,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterCategory,
}

// Outcome classes
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// Record is one launch attempt
type Record struct {
	Site            string  `json:"site" db:"launch_site"`
	FlightNumber    int     `json:"flight_number" db:"flight_number"`
	PayloadMassKg   float64 `json:"payload_mass_kg" db:"payload_mass_kg"`
	Class           int     `json:"class" db:"class"`
	BoosterCategory string  `json:"booster_version_category" db:"booster_version_category"`
	BoosterVersion  string  `json:"booster_version,omitempty" db:"booster_version"`
}

// Succeeded reports whether the launch outcome class is 1
func (r Record) Succeeded() bool {
	return r.Class == ClassSuccess
}

// Bounds is an inclusive payload mass range in kilograms
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether low <= kg <= high. An inverted range contains nothing.
func (b Bounds) Contains(kg float64) bool {
	return kg >= b.Min && kg <= b.Max
}

// Dataset is the immutable, ordered set of launch records loaded at startup.
// Nothing mutates it after NewDataset returns, so it is shared across
// request goroutines without locking.
type Dataset struct {
	snapshot core.SnapshotID
	source   string
	loadedAt time.Time
	records  []Record
	sites    []string
	bounds   Bounds
}

// NewDataset takes ownership of records; bounds are computed by the loader
func NewDataset(source string, records []Record, bounds Bounds) *Dataset {
	seen := make(map[string]bool)
	var sites []string
	for _, r := range records {
		if !seen[r.Site] {
			seen[r.Site] = true
			sites = append(sites, r.Site)
		}
	}
	return &Dataset{
		snapshot: core.NewSnapshotID(),
		source:   source,
		loadedAt: time.Now(),
		records:  records,
		sites:    sites,
		bounds:   bounds,
	}
}

// Records returns the records in file order. Callers must not modify the slice.
func (d *Dataset) Records() []Record { return d.records }

// Len returns the number of records
func (d *Dataset) Len() int { return len(d.records) }

// Sites returns distinct site names in first-seen order. Callers must not modify the slice.
func (d *Dataset) Sites() []string { return d.sites }

// Bounds returns the true minimum and maximum payload mass of the dataset
func (d *Dataset) Bounds() Bounds { return d.bounds }

// Source describes where the records were loaded from
func (d *Dataset) Source() string { return d.source }

// Snapshot identifies this load of the dataset
func (d *Dataset) Snapshot() core.SnapshotID { return d.snapshot }

// LoadedAt is when the dataset was built
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// HasSite reports whether any record was launched from site
func (d *Dataset) HasSite(site string) bool {
	for _, s := range d.sites {
		if s == site {
			return true
		}
	}
	return false
}

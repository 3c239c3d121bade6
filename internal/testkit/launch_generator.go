package testkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"launchdash/domain/launch"

	"github.com/xuri/excelize/v2"
)

// LaunchGeneratorConfig configures the synthetic launch generator
type LaunchGeneratorConfig struct {
	LaunchCount     int      `json:"launch_count"`
	Sites           []string `json:"sites"`
	MaxPayloadKg    float64  `json:"max_payload_kg"`
	BaseSuccessRate float64  `json:"base_success_rate"`
	Seed            int64    `json:"seed"`
}

// DefaultLaunchConfig mirrors the shape of the public launch records file
func DefaultLaunchConfig() LaunchGeneratorConfig {
	return LaunchGeneratorConfig{
		LaunchCount:     56,
		Sites:           []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"},
		MaxPayloadKg:    9600,
		BaseSuccessRate: 0.2,
		Seed:            42,
	}
}

// boosterEras maps the share of the flight sequence to the booster category flown in it
var boosterEras = []struct {
	until    float64
	category string
}{
	{0.10, "v1.0"},
	{0.35, "v1.1"},
	{0.75, "FT"},
	{0.90, "B4"},
	{1.00, "B5"},
}

// LaunchGenerator generates deterministic synthetic launch records
type LaunchGenerator struct {
	config LaunchGeneratorConfig
	rng    *rand.Rand
}

// NewLaunchGenerator creates a new launch generator
func NewLaunchGenerator(config LaunchGeneratorConfig) *LaunchGenerator {
	return &LaunchGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns LaunchCount records with ascending flight numbers. Sites are
// visited round-robin for the first len(Sites) flights so every site appears.
func (g *LaunchGenerator) Generate() ([]launch.Record, error) {
	if g.config.LaunchCount <= 0 {
		return nil, fmt.Errorf("launch count must be positive, got %d", g.config.LaunchCount)
	}
	if len(g.config.Sites) == 0 {
		return nil, fmt.Errorf("at least one site is required")
	}

	records := make([]launch.Record, g.config.LaunchCount)
	for i := range records {
		progress := float64(i+1) / float64(g.config.LaunchCount)

		site := g.config.Sites[i%len(g.config.Sites)]
		if i >= len(g.config.Sites) {
			site = g.config.Sites[g.rng.Intn(len(g.config.Sites))]
		}

		category := boosterEras[len(boosterEras)-1].category
		for _, era := range boosterEras {
			if progress <= era.until {
				category = era.category
				break
			}
		}

		// later boosters succeed more often
		successRate := g.config.BaseSuccessRate + (1-g.config.BaseSuccessRate)*progress*0.9
		class := launch.ClassFailure
		if g.rng.Float64() < successRate {
			class = launch.ClassSuccess
		}

		payload := math.Round(g.rng.Float64()*g.config.MaxPayloadKg*10) / 10

		records[i] = launch.Record{
			Site:            site,
			FlightNumber:    i + 1,
			PayloadMassKg:   payload,
			Class:           class,
			BoosterCategory: category,
			BoosterVersion:  fmt.Sprintf("F9 %s B%04d", category, 1000+i),
		}
	}
	return records, nil
}

// WriteCSV writes records in the column layout of the launch records file,
// including the unnamed leading index column that pandas exports
func WriteCSV(w io.Writer, records []launch.Record) error {
	cw := csv.NewWriter(w)
	header := []string{
		"", launch.ColumnFlightNumber, launch.ColumnSite, launch.ColumnClass,
		launch.ColumnPayloadMass, launch.ColumnBoosterVersion, launch.ColumnBoosterCategory,
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(r.FlightNumber),
			r.Site,
			strconv.Itoa(r.Class),
			strconv.FormatFloat(r.PayloadMassKg, 'f', 1, 64),
			r.BoosterVersion,
			r.BoosterCategory,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes records to Sheet1 of a new workbook at path. Numbers are
// stored as numeric cells and there is no index column.
func WriteXLSX(path string, records []launch.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	header := []interface{}{
		launch.ColumnFlightNumber, launch.ColumnSite, launch.ColumnClass,
		launch.ColumnPayloadMass, launch.ColumnBoosterVersion, launch.ColumnBoosterCategory,
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.FlightNumber, r.Site, r.Class, r.PayloadMassKg, r.BoosterVersion, r.BoosterCategory}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

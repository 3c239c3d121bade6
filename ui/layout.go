package ui

import (
	"launchdash/domain/launch"
)

// Slider limits are fixed; only the initial selection follows the data
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

// Element IDs shared by the template, the script and the JSON layout
const (
	DropdownID     = "site-dropdown"
	SliderID       = "payload-slider"
	PieChartID     = "success-pie-chart"
	ScatterChartID = "success-payload-scatter-chart"
)

// Option is one dropdown entry
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown is the site selector
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// RangeSlider is the payload range control
type RangeSlider struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Value [2]float64 `json:"value"`
}

// Marks returns the tick positions from Min to Max every Step
func (s RangeSlider) Marks() []float64 {
	var marks []float64
	if s.Step <= 0 {
		return marks
	}
	for v := s.Min; v <= s.Max; v += s.Step {
		marks = append(marks, v)
	}
	return marks
}

// Graph is an empty chart placeholder filled from Endpoint
type Graph struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
}

// Layout is the static description of the page, built once at startup
type Layout struct {
	Title        string      `json:"title"`
	Dropdown     Dropdown    `json:"dropdown"`
	Slider       RangeSlider `json:"slider"`
	PieChart     Graph       `json:"pie_chart"`
	ScatterChart Graph       `json:"scatter_chart"`
}

// BuildLayout describes the controls for ds. The dropdown lists "All Sites"
// then every site in first-seen order. The slider spans the fixed 0-10000 range
// while its initial selection is the dataset's true payload bounds, which may
// not fall on a step.
func BuildLayout(ds *launch.Dataset) Layout {
	options := make([]Option, 0, len(ds.Sites())+1)
	options = append(options, Option{Label: launch.AllSitesLabel, Value: launch.AllSites})
	for _, site := range ds.Sites() {
		options = append(options, Option{Label: site, Value: site})
	}

	bounds := ds.Bounds()
	return Layout{
		Title: "SpaceX Launch Records Dashboard",
		Dropdown: Dropdown{
			ID:          DropdownID,
			Options:     options,
			Value:       launch.AllSites,
			Placeholder: "Select a Launch Site here",
			Searchable:  true,
		},
		Slider: RangeSlider{
			ID:    SliderID,
			Label: "Payload range (Kg):",
			Min:   SliderMin,
			Max:   SliderMax,
			Step:  SliderStep,
			Value: [2]float64{bounds.Min, bounds.Max},
		},
		PieChart:     Graph{ID: PieChartID, Endpoint: "/api/charts/pie"},
		ScatterChart: Graph{ID: ScatterChartID, Endpoint: "/api/charts/scatter"},
	}
}

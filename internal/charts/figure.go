// Package charts turns the launch dataset into plotly figure specifications.
// Every function here is pure: it reads the immutable dataset and returns a new
// figure, so repeated calls with the same arguments produce identical output.
package charts

import "encoding/json"

// Qualitative palette used for categorical colouring, the same order plotly uses by default
var Palette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Text is a plotly title object
type Text struct {
	Text string `json:"text"`
}

// Axis describes one cartesian axis
type Axis struct {
	Title Text `json:"title"`
}

// Legend describes the legend box
type Legend struct {
	Title Text `json:"title"`
}

// Layout is the subset of plotly layout the dashboard sets
type Layout struct {
	Title  *Text   `json:"title,omitempty"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// PieTrace is one pie; Labels and Values are parallel
type PieTrace struct {
	Type   string    `json:"type"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Marker styles scatter points
type Marker struct {
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
}

// ScatterTrace is one colour group of a scatter plot; X, Y and Text are parallel
type ScatterTrace struct {
	Type        string    `json:"type"`
	Mode        string    `json:"mode"`
	Name        string    `json:"name"`
	LegendGroup string    `json:"legendgroup"`
	X           []float64 `json:"x"`
	Y           []int     `json:"y"`
	Text        []string  `json:"text"`
	Marker      Marker    `json:"marker"`
}

// Figure is a chart specification rendered client-side by plotly.js
type Figure struct {
	Pies     []PieTrace
	Scatters []ScatterTrace
	Layout   Layout
}

// MarshalJSON emits the {"data": [...], "layout": {...}} shape plotly expects
func (f Figure) MarshalJSON() ([]byte, error) {
	data := make([]interface{}, 0, len(f.Pies)+len(f.Scatters))
	for _, p := range f.Pies {
		data = append(data, p)
	}
	for _, s := range f.Scatters {
		data = append(data, s)
	}
	return json.Marshal(struct {
		Data   []interface{} `json:"data"`
		Layout Layout        `json:"layout"`
	}{data, f.Layout})
}

// SliceCount is the number of pie slices across all pie traces
func (f Figure) SliceCount() int {
	n := 0
	for _, p := range f.Pies {
		n += len(p.Labels)
	}
	return n
}

// PointCount is the number of scatter points across all scatter traces
func (f Figure) PointCount() int {
	n := 0
	for _, s := range f.Scatters {
		n += len(s.X)
	}
	return n
}

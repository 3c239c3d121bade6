package charts

import (
	"fmt"

	"launchdash/domain/launch"
)

// PayloadScatter plots payload mass against outcome class for every record whose
// payload lies in [low, high], restricted to site unless site is launch.AllSites.
// Points are grouped into one trace per booster version category in first-seen
// order. An inverted range matches nothing and yields an empty figure.
func PayloadScatter(ds *launch.Dataset, site string, low, high float64) Figure {
	bounds := launch.Bounds{Min: low, Max: high}

	var traces []ScatterTrace
	index := make(map[string]int)
	for _, r := range ds.Records() {
		if !bounds.Contains(r.PayloadMassKg) {
			continue
		}
		if site != launch.AllSites && r.Site != site {
			continue
		}

		i, ok := index[r.BoosterCategory]
		if !ok {
			i = len(traces)
			index[r.BoosterCategory] = i
			traces = append(traces, ScatterTrace{
				Type:        "scatter",
				Mode:        "markers",
				Name:        r.BoosterCategory,
				LegendGroup: r.BoosterCategory,
				X:           []float64{},
				Y:           []int{},
				Text:        []string{},
				Marker:      Marker{Color: Palette[i%len(Palette)], Symbol: "circle"},
			})
		}

		t := &traces[i]
		t.X = append(t.X, r.PayloadMassKg)
		t.Y = append(t.Y, r.Class)
		t.Text = append(t.Text, hoverText(r))
	}

	if traces == nil {
		traces = []ScatterTrace{}
	}

	return Figure{
		Scatters: traces,
		Layout: Layout{
			XAxis:  &Axis{Title: Text{Text: launch.ColumnPayloadMass}},
			YAxis:  &Axis{Title: Text{Text: launch.ColumnClass}},
			Legend: &Legend{Title: Text{Text: launch.ColumnBoosterCategory}},
		},
	}
}

func hoverText(r launch.Record) string {
	if r.BoosterVersion != "" {
		return fmt.Sprintf("Flight %d, %s, %s", r.FlightNumber, r.Site, r.BoosterVersion)
	}
	return fmt.Sprintf("Flight %d, %s", r.FlightNumber, r.Site)
}

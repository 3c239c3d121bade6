package charts

import (
	"encoding/json"
	"testing"

	"launchdash/domain/launch"
	"launchdash/internal/dataset"
	"launchdash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleDataset(t *testing.T) *launch.Dataset {
	t.Helper()
	ds, err := dataset.FromRecords([]launch.Record{
		{Site: "Site A", FlightNumber: 1, PayloadMassKg: 500, Class: 1, BoosterCategory: "v1.0"},
		{Site: "Site A", FlightNumber: 2, PayloadMassKg: 2000, Class: 0, BoosterCategory: "v1.1"},
		{Site: "Site B", FlightNumber: 3, PayloadMassKg: 3000, Class: 1, BoosterCategory: "v1.0"},
	}, "example")
	require.NoError(t, err)
	return ds
}

func generatedDataset(t *testing.T, seed int64) *launch.Dataset {
	t.Helper()
	config := testkit.DefaultLaunchConfig()
	config.Seed = seed
	records, err := testkit.NewLaunchGenerator(config).Generate()
	require.NoError(t, err)
	ds, err := dataset.FromRecords(records, "generated")
	require.NoError(t, err)
	return ds
}

func TestSuccessPie_Example(t *testing.T) {
	ds := exampleDataset(t)

	site := SuccessPie(ds, "Site A")
	require.Len(t, site.Pies, 1)
	assert.Equal(t, []string{"0", "1"}, site.Pies[0].Labels)
	assert.Equal(t, []float64{1, 1}, site.Pies[0].Values)
	assert.Equal(t, "Total Success Launches for site Site A", site.Layout.Title.Text)

	all := SuccessPie(ds, launch.AllSites)
	require.Len(t, all.Pies, 1)
	assert.Equal(t, []string{"Site A", "Site B"}, all.Pies[0].Labels)
	assert.Equal(t, []float64{1, 1}, all.Pies[0].Values)
	assert.Equal(t, "Total Success Launches By Site", all.Layout.Title.Text)
}

func TestSuccessPie_AllSumsSuccessesNotLaunches(t *testing.T) {
	ds, err := dataset.FromRecords([]launch.Record{
		{Site: "A", FlightNumber: 1, PayloadMassKg: 1, Class: 0, BoosterCategory: "FT"},
		{Site: "A", FlightNumber: 2, PayloadMassKg: 2, Class: 0, BoosterCategory: "FT"},
		{Site: "B", FlightNumber: 3, PayloadMassKg: 3, Class: 1, BoosterCategory: "FT"},
	}, "zeros")
	require.NoError(t, err)

	fig := SuccessPie(ds, launch.AllSites)
	assert.Equal(t, []string{"A", "B"}, fig.Pies[0].Labels)
	assert.Equal(t, []float64{0, 1}, fig.Pies[0].Values)
	assert.Equal(t, 2, fig.SliceCount())
}

func TestSuccessPie_UnknownSiteIsEmpty(t *testing.T) {
	fig := SuccessPie(exampleDataset(t), "Boca Chica")

	assert.Equal(t, 0, fig.SliceCount())
	body, err := json.Marshal(fig)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"data":[{"type":"pie","labels":[],"values":[]}],"layout":{"title":{"text":"Total Success Launches for site Boca Chica"}}}`,
		string(body))
}

func TestSuccessPie_SliceCounts(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		ds := generatedDataset(t, seed)

		assert.Equal(t, len(ds.Sites()), SuccessPie(ds, launch.AllSites).SliceCount(), "seed %d", seed)

		for _, site := range ds.Sites() {
			classes := make(map[int]bool)
			for _, r := range ds.Records() {
				if r.Site == site {
					classes[r.Class] = true
				}
			}
			fig := SuccessPie(ds, site)
			assert.Equal(t, len(classes), fig.SliceCount(), "seed %d site %s", seed, site)
			assert.LessOrEqual(t, fig.SliceCount(), 2)
		}
	}
}

func TestPayloadScatter_Example(t *testing.T) {
	ds := exampleDataset(t)

	fig := PayloadScatter(ds, launch.AllSites, 0, 10000)
	require.Len(t, fig.Scatters, 2)
	assert.Equal(t, "v1.0", fig.Scatters[0].Name)
	assert.Equal(t, []float64{500, 3000}, fig.Scatters[0].X)
	assert.Equal(t, []int{1, 1}, fig.Scatters[0].Y)
	assert.Equal(t, "v1.1", fig.Scatters[1].Name)
	assert.Equal(t, []float64{2000}, fig.Scatters[1].X)
	assert.NotEqual(t, fig.Scatters[0].Marker.Color, fig.Scatters[1].Marker.Color)

	siteA := PayloadScatter(ds, "Site A", 1000, 2000)
	assert.Equal(t, 1, siteA.PointCount())
	assert.Equal(t, []float64{2000}, siteA.Scatters[0].X)
	assert.Equal(t, []string{"Flight 2, Site A"}, siteA.Scatters[0].Text)
}

func TestPayloadScatter_BoundsAreInclusive(t *testing.T) {
	ds := exampleDataset(t)
	assert.Equal(t, 1, PayloadScatter(ds, launch.AllSites, 500, 500).PointCount())
	assert.Equal(t, 3, PayloadScatter(ds, launch.AllSites, 500, 3000).PointCount())
	assert.Equal(t, 1, PayloadScatter(ds, launch.AllSites, 500.5, 2999.5).PointCount())
}

func TestPayloadScatter_InvertedRangeIsEmpty(t *testing.T) {
	ds := generatedDataset(t, 42)
	for _, r := range [][2]float64{{10000, 0}, {5000, 4999}, {1, 0}} {
		fig := PayloadScatter(ds, launch.AllSites, r[0], r[1])
		assert.Equal(t, 0, fig.PointCount(), "range %v", r)

		body, err := json.Marshal(fig)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"data":[]`)
	}
}

func TestPayloadScatter_FullRangeAllSites(t *testing.T) {
	for _, seed := range []int64{3, 42, 99} {
		ds := generatedDataset(t, seed)
		b := ds.Bounds()
		assert.Equal(t, ds.Len(), PayloadScatter(ds, launch.AllSites, b.Min, b.Max).PointCount(), "seed %d", seed)
	}
}

func TestPayloadScatter_SiteFilter(t *testing.T) {
	ds := generatedDataset(t, 42)
	b := ds.Bounds()

	total := 0
	for _, site := range ds.Sites() {
		fig := PayloadScatter(ds, site, b.Min, b.Max)
		for _, trace := range fig.Scatters {
			for _, text := range trace.Text {
				assert.Contains(t, text, site)
			}
		}
		total += fig.PointCount()
	}
	assert.Equal(t, ds.Len(), total)
	assert.Equal(t, 0, PayloadScatter(ds, "Boca Chica", b.Min, b.Max).PointCount())
}

func TestCharts_Idempotent(t *testing.T) {
	ds := generatedDataset(t, 42)
	site := ds.Sites()[0]

	assert.Equal(t, SuccessPie(ds, launch.AllSites), SuccessPie(ds, launch.AllSites))
	assert.Equal(t, SuccessPie(ds, site), SuccessPie(ds, site))
	assert.Equal(t, PayloadScatter(ds, site, 1000, 6000), PayloadScatter(ds, site, 1000, 6000))

	before := append([]launch.Record(nil), ds.Records()...)
	_ = PayloadScatter(ds, launch.AllSites, 0, 10000)
	_ = SuccessPie(ds, launch.AllSites)
	assert.Equal(t, before, ds.Records(), "recompute must not mutate the dataset")
}

func TestFigure_JSONShape(t *testing.T) {
	fig := PayloadScatter(exampleDataset(t), "Site B", 0, 10000)
	body, err := json.Marshal(fig)
	require.NoError(t, err)

	var decoded struct {
		Data []struct {
			Type string    `json:"type"`
			Mode string    `json:"mode"`
			Name string    `json:"name"`
			X    []float64 `json:"x"`
			Y    []int     `json:"y"`
		} `json:"data"`
		Layout struct {
			XAxis struct {
				Title struct {
					Text string `json:"text"`
				} `json:"title"`
			} `json:"xaxis"`
		} `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Len(t, decoded.Data, 1)
	assert.Equal(t, "scatter", decoded.Data[0].Type)
	assert.Equal(t, "markers", decoded.Data[0].Mode)
	assert.Equal(t, []float64{3000}, decoded.Data[0].X)
	assert.Equal(t, "Payload Mass (kg)", decoded.Layout.XAxis.Title.Text)
}

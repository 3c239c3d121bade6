package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDataset_SitesInFirstSeenOrder(t *testing.T) {
	records := []Record{
		{Site: "CCAFS LC-40", FlightNumber: 1, Class: 0},
		{Site: "VAFB SLC-4E", FlightNumber: 2, Class: 1},
		{Site: "CCAFS LC-40", FlightNumber: 3, Class: 1},
		{Site: "KSC LC-39A", FlightNumber: 4, Class: 1},
	}

	ds := NewDataset("test", records, Bounds{Min: 0, Max: 100})

	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A"}, ds.Sites())
	assert.Equal(t, 4, ds.Len())
	assert.True(t, ds.HasSite("KSC LC-39A"))
	assert.False(t, ds.HasSite("Boca Chica"))
	assert.False(t, ds.Snapshot().String() == "")
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{Min: 1000, Max: 2000}
	assert.True(t, b.Contains(1000))
	assert.True(t, b.Contains(2000))
	assert.False(t, b.Contains(999.9))

	inverted := Bounds{Min: 5000, Max: 1000}
	for _, kg := range []float64{0, 1000, 3000, 5000, 9000} {
		assert.False(t, inverted.Contains(kg))
	}
}

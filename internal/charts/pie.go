package charts

import (
	"fmt"
	"sort"
	"strconv"

	"launchdash/domain/launch"
)

// SuccessPie builds the outcome pie for the site selector value.
//
// For launch.AllSites there is one slice per site whose value is the sum of the
// class column, i.e. the number of successful launches, not the number of
// launches. For a single site there is one slice per outcome class present,
// valued by row count. A site absent from the dataset yields no slices.
// Slices are ordered by key, as a group-by would order them.
func SuccessPie(ds *launch.Dataset, site string) Figure {
	if site == launch.AllSites {
		return successesBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successesBySite(ds *launch.Dataset) Figure {
	sums := make(map[string]int)
	for _, r := range ds.Records() {
		sums[r.Site] += r.Class
	}

	sites := make([]string, 0, len(sums))
	for site := range sums {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	trace := PieTrace{Type: "pie", Labels: make([]string, 0, len(sites)), Values: make([]float64, 0, len(sites))}
	for _, site := range sites {
		trace.Labels = append(trace.Labels, site)
		trace.Values = append(trace.Values, float64(sums[site]))
	}

	return Figure{
		Pies:   []PieTrace{trace},
		Layout: Layout{Title: &Text{Text: "Total Success Launches By Site"}},
	}
}

func outcomesForSite(ds *launch.Dataset, site string) Figure {
	counts := make(map[int]int)
	for _, r := range ds.Records() {
		if r.Site == site {
			counts[r.Class]++
		}
	}

	classes := make([]int, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	trace := PieTrace{Type: "pie", Labels: make([]string, 0, len(classes)), Values: make([]float64, 0, len(classes))}
	for _, class := range classes {
		trace.Labels = append(trace.Labels, strconv.Itoa(class))
		trace.Values = append(trace.Values, float64(counts[class]))
	}

	return Figure{
		Pies:   []PieTrace{trace},
		Layout: Layout{Title: &Text{Text: fmt.Sprintf("Total Success Launches for site %s", site)}},
	}
}

package profiling

import (
	"math"

	"launchdash/domain/launch"
	"launchdash/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// SiteSummary aggregates the launches of one site
type SiteSummary struct {
	Site          string  `json:"site"`
	Launches      int     `json:"launches"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"`
	MeanPayloadKg float64 `json:"mean_payload_kg"`
}

// Summary describes the whole dataset. It is computed once since the dataset never changes.
type Summary struct {
	Launches    int                 `json:"launches"`
	Successes   int                 `json:"successes"`
	SuccessRate float64             `json:"success_rate"`
	Sites       []SiteSummary       `json:"sites"`
	Payload     PayloadDistribution `json:"payload"`
	// PayloadOutcomeCorrelation is the Pearson correlation of payload mass and
	// outcome class; nil when either has zero variance.
	PayloadOutcomeCorrelation *float64 `json:"payload_outcome_correlation"`
}

// Summarize computes per-site and global statistics over ds
func Summarize(ds *launch.Dataset) (*Summary, error) {
	records := ds.Records()
	if len(records) == 0 {
		return nil, errors.DatasetMalformed("cannot summarize an empty dataset")
	}

	payloads := make([]float64, len(records))
	outcomes := make([]float64, len(records))
	bySite := make(map[string][]float64)
	successes := make(map[string]int)
	total := 0
	for i, r := range records {
		payloads[i] = r.PayloadMassKg
		outcomes[i] = float64(r.Class)
		bySite[r.Site] = append(bySite[r.Site], r.PayloadMassKg)
		if r.Succeeded() {
			successes[r.Site]++
			total++
		}
	}

	dist, err := AnalyzeDistribution(payloads)
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze payload distribution")
	}

	summary := &Summary{
		Launches:    len(records),
		Successes:   total,
		SuccessRate: float64(total) / float64(len(records)),
		Payload:     dist,
	}

	for _, site := range ds.Sites() {
		sitePayloads := bySite[site]
		summary.Sites = append(summary.Sites, SiteSummary{
			Site:          site,
			Launches:      len(sitePayloads),
			Successes:     successes[site],
			SuccessRate:   float64(successes[site]) / float64(len(sitePayloads)),
			MeanPayloadKg: stat.Mean(sitePayloads, nil),
		})
	}

	if len(records) > 1 {
		if corr := stat.Correlation(payloads, outcomes, nil); !math.IsNaN(corr) && !math.IsInf(corr, 0) {
			summary.PayloadOutcomeCorrelation = &corr
		}
	}

	return summary, nil
}

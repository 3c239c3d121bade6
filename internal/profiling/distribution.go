package profiling

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PayloadDistribution summarises the payload masses of a set of launches
type PayloadDistribution struct {
	Count        int     `json:"count"`
	Mean         float64 `json:"mean"`
	StdDev       float64 `json:"std_dev"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Median       float64 `json:"median"`
	Q25          float64 `json:"q25"`
	Q75          float64 `json:"q75"`
	Skewness     float64 `json:"skewness"`
	IsNormal     bool    `json:"is_normal"`
	NormalityP   float64 `json:"normality_p"`
	OutlierCount int     `json:"outlier_count"`
}

// AnalyzeDistribution computes summary statistics for payload masses
func AnalyzeDistribution(data []float64) (PayloadDistribution, error) {
	dist := PayloadDistribution{Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return dist, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return dist, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return dist, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return dist, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return dist, err
	}

	// Quartiles for IQR-based outlier detection. stats.Percentile rejects
	// small inputs, so the empirical quantile is taken from a sorted copy.
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	q25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)

	dist.Mean = mean
	dist.StdDev = stdDev
	dist.Min = min
	dist.Max = max
	dist.Median = median
	dist.Q25 = q25
	dist.Q75 = q75
	dist.Skewness = calculateSkewness(data, mean, stdDev)
	dist.IsNormal, dist.NormalityP = testNormality(data, mean, stdDev)
	dist.OutlierCount = detectOutliers(data, q25, q75)

	return dist, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// calculateKurtosis computes total (not excess) sample kurtosis
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	excessKurtosis := sumFourthDeviations/n - 3
	correction := (n - 1) / ((n - 2) * (n - 3))
	excessKurtosis = excessKurtosis*correction + 6/(n+1)

	return excessKurtosis + 3
}

// testNormality is a skewness/kurtosis approximation, not a full Shapiro-Wilk test
func testNormality(data []float64, mean, stdDev float64) (isNormal bool, pValue float64) {
	if len(data) < 3 || stdDev == 0 {
		return false, 1.0
	}

	skewness := calculateSkewness(data, mean, stdDev)
	kurtosis := calculateKurtosis(data, mean, stdDev)
	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// detectOutliers counts values outside 1.5 IQR of the quartiles
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}
	return outlierCount
}

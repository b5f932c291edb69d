package termo

import (
	"fmt"
	"math"
	"time"

	"termotrack/pkg/civil"
	"termotrack/pkg/common"
	"termotrack/pkg/models"
)

// Bands are control-chart levels derived from historical dispersion.
// They are not the equipment's operational thresholds.
type Bands struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Upper1 float64 `json:"upper_1"`
	Lower1 float64 `json:"lower_1"`
	Upper2 float64 `json:"upper_2"`
	Lower2 float64 `json:"lower_2"`
	Upper3 float64 `json:"upper_3"`
	Lower3 float64 `json:"lower_3"`
}

type MonthStats struct {
	Month string `json:"month"`
	Count int    `json:"count"`
	Bands Bands  `json:"bands"`
}

type ChartSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Upper3 float64 `json:"upper_3"`
	Lower3 float64 `json:"lower_3"`
}

// ChartData is the fixed contract consumed by the plotting collaborator:
// the observed series plus seven flat reference lines of equal length.
type ChartData struct {
	Labels  []string     `json:"labels"`
	Current []float64    `json:"current"`
	Mean    []float64    `json:"mean"`
	Upper1  []float64    `json:"upper_1"`
	Lower1  []float64    `json:"lower_1"`
	Upper2  []float64    `json:"upper_2"`
	Lower2  []float64    `json:"lower_2"`
	Upper3  []float64    `json:"upper_3"`
	Lower3  []float64    `json:"lower_3"`
	Summary ChartSummary `json:"summary"`
}

// ComputeBands computes mean, sample standard deviation and the three
// sigma band pairs. Degenerate samples are defined outcomes, never an
// error: an empty series collapses to all zeros, a single value has no
// dispersion so every band equals the value.
func ComputeBands(values []float64) Bands {
	n := len(values)
	if n == 0 {
		return Bands{}
	}

	mean := common.Reducer(values, func(acc, v float64) float64 { return acc + v }, 0.0) / float64(n)

	stdDev := 0.0
	if n > 1 {
		sumSq := common.Reducer(values, func(acc, v float64) float64 {
			return acc + (v-mean)*(v-mean)
		}, 0.0)
		stdDev = math.Sqrt(sumSq / float64(n-1))
	}

	return Bands{
		Mean:   mean,
		StdDev: stdDev,
		Upper1: mean + 1*stdDev,
		Lower1: mean - 1*stdDev,
		Upper2: mean + 2*stdDev,
		Lower2: mean - 2*stdDev,
		Upper3: mean + 3*stdDev,
		Lower3: mean - 3*stdDev,
	}
}

// CurrentSeries extracts the primary values from verifications in order,
// skipping rows where the primary value is absent.
func CurrentSeries(verifications []models.Verification) []float64 {
	values := make([]float64, 0, len(verifications))
	for _, v := range verifications {
		if v.Current != nil {
			values = append(values, *v.Current)
		}
	}
	return values
}

// MonthlyStats partitions verifications by civil month in loc and
// computes bands per partition. Input must be ordered by instant asc;
// output months come out ascending as well.
func MonthlyStats(verifications []models.Verification, loc *time.Location) []MonthStats {
	stats := []MonthStats{}
	byMonth := map[string][]float64{}
	order := []string{}

	for _, v := range verifications {
		if v.Current == nil {
			continue
		}
		key := civil.MonthKey(v.RecordedAt, loc)
		if _, seen := byMonth[key]; !seen {
			order = append(order, key)
		}
		byMonth[key] = append(byMonth[key], *v.Current)
	}

	for _, key := range order {
		values := byMonth[key]
		stats = append(stats, MonthStats{
			Month: key,
			Count: len(values),
			Bands: ComputeBands(values),
		})
	}
	return stats
}

// BuildChart assembles the full chart payload for one ordered series.
func BuildChart(verifications []models.Verification, loc *time.Location) ChartData {
	labels := []string{}
	values := []float64{}
	for _, v := range verifications {
		if v.Current == nil {
			continue
		}
		labels = append(labels, v.RecordedAt.In(loc).Format("02/01/2006"))
		values = append(values, *v.Current)
	}

	bands := ComputeBands(values)
	flat := func(level float64) []float64 {
		return common.Mapper(values, func(float64) float64 { return level })
	}

	return ChartData{
		Labels:  labels,
		Current: values,
		Mean:    flat(bands.Mean),
		Upper1:  flat(bands.Upper1),
		Lower1:  flat(bands.Lower1),
		Upper2:  flat(bands.Upper2),
		Lower2:  flat(bands.Lower2),
		Upper3:  flat(bands.Upper3),
		Lower3:  flat(bands.Lower3),
		Summary: ChartSummary{
			Mean:   round2(bands.Mean),
			StdDev: round2(bands.StdDev),
			Upper3: round2(bands.Upper3),
			Lower3: round2(bands.Lower3),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (i *Termo) chart(thermometerID uint, monthKey string) (ChartData, error) {
	if i.Verification == nil {
		return ChartData{}, fmt.Errorf("verification service not available")
	}
	verifications, err := i.Verification.History(thermometerID, monthKey)
	if err != nil {
		return ChartData{}, err
	}
	return BuildChart(verifications, i.Zone), nil
}

func (i *Termo) monthly(thermometerID uint) ([]MonthStats, error) {
	if i.Verification == nil {
		return nil, fmt.Errorf("verification service not available")
	}
	verifications, err := i.Verification.History(thermometerID, "")
	if err != nil {
		return nil, err
	}
	return MonthlyStats(verifications, i.Zone), nil
}

type IStatsImpl struct {
	termo *Termo
}

func (is *IStatsImpl) Chart(thermometerID uint, monthKey string) (ChartData, error) {
	return is.termo.chart(thermometerID, monthKey)
}

func (is *IStatsImpl) Monthly(thermometerID uint) ([]MonthStats, error) {
	return is.termo.monthly(thermometerID)
}

func (i *Termo) GetIStats() IStats {
	return &IStatsImpl{termo: i}
}

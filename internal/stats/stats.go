// Package stats computes per-feature destruction-rate statistics from
// historical incident records. The output is explanatory material for
// reporting collaborators; the classifier never consumes it.
package stats

import (
	"sort"

	mstats "github.com/montanaflynn/stats"
	"github.com/rs/zerolog/log"

	"wildfire-risk/internal/dataset"
)

// MinSampleCount is the reliability threshold: value groups with fewer
// samples are dropped entirely rather than flagged, because their
// empirical rates are too noisy to present as evidence.
const MinSampleCount = 20

// ValueStat is the empirical destruction rate of one observed value of
// one feature column.
type ValueStat struct {
	Value           string  `json:"value"`
	DestructionRate float64 `json:"destruction_rate"`
	Count           int     `json:"count"`
}

// Destruction groups the records by raw value for every feature column
// and returns, per column, the value stats with at least minCount samples,
// ordered by descending destruction rate. Records must already exclude
// inaccessible damage assessments. Empty raw values are skipped, matching
// how null groups drop out of the source data.
func Destruction(records []dataset.Record, minCount int) map[string][]ValueStat {
	if minCount <= 0 {
		minCount = MinSampleCount
	}

	out := make(map[string][]ValueStat, len(dataset.FeatureColumns))
	for _, col := range dataset.FeatureColumns {
		groups := make(map[string][]float64)
		for i := range records {
			v := records[i].Value(col)
			if v == "" {
				continue
			}
			target := 0.0
			if records[i].Destroyed() {
				target = 1.0
			}
			groups[v] = append(groups[v], target)
		}

		var valueStats []ValueStat
		for value, targets := range groups {
			if len(targets) < minCount {
				continue
			}
			rate, err := mstats.Mean(targets)
			if err != nil {
				log.Warn().Err(err).Str("column", col).Str("value", value).Msg("destruction rate computation failed")
				continue
			}
			valueStats = append(valueStats, ValueStat{
				Value:           value,
				DestructionRate: rate,
				Count:           len(targets),
			})
		}

		sort.SliceStable(valueStats, func(a, b int) bool {
			return valueStats[a].DestructionRate > valueStats[b].DestructionRate
		})
		out[col] = valueStats
	}
	return out
}

// Package report derives presentation summaries from incident records:
// monthly incident groupings for the timeline map and per-county damage
// summaries. Records with malformed or missing location/date fields are
// skipped for the affected summary only; they never abort processing.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"wildfire-risk/internal/dataset"
)

// Incident is one mappable structure-damage report.
type Incident struct {
	Date         string  `json:"date"`
	IncidentName string  `json:"incident_name"`
	Damage       string  `json:"damage"`
	County       string  `json:"county"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

// CountySummary aggregates destruction outcomes for one county.
type CountySummary struct {
	County    string  `json:"county"`
	Total     int     `json:"total"`
	Destroyed int     `json:"destroyed"`
	Rate      float64 `json:"rate"`
}

// ByMonth groups geolocated incidents by "YYYY-MM" key. Incident start
// dates use the source's "MM-DD-YYYY HH:MM" format; records with missing
// coordinates, zero coordinates, or unparsable dates are dropped from the
// map data only.
func ByMonth(records []dataset.Record) map[string][]Incident {
	out := make(map[string][]Incident)
	skipped := 0
	for i := range records {
		r := &records[i]
		if r.Latitude == 0 || r.Longitude == 0 {
			skipped++
			continue
		}
		date, monthKey, ok := parseIncidentDate(r.IncidentDate)
		if !ok {
			skipped++
			continue
		}
		out[monthKey] = append(out[monthKey], Incident{
			Date:         date,
			IncidentName: r.IncidentName,
			Damage:       r.Damage,
			County:       r.County,
			Lat:          r.Latitude,
			Lon:          r.Longitude,
		})
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("records without usable location or date excluded from map data")
	}
	return out
}

// parseIncidentDate splits a "MM-DD-YYYY HH:MM" timestamp into its date
// part and a sortable "YYYY-MM" month key.
func parseIncidentDate(raw string) (date, monthKey string, ok bool) {
	if raw == "" {
		return "", "", false
	}
	date = strings.Fields(raw)[0]
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return "", "", false
	}
	month := parts[0]
	if len(month) == 1 {
		month = "0" + month
	}
	return date, fmt.Sprintf("%s-%s", parts[2], month), true
}

// ByCounty summarizes destruction outcomes per county, ordered by
// descending destruction count. Inaccessible records are excluded, same
// as in training.
func ByCounty(records []dataset.Record) []CountySummary {
	records = dataset.FilterAccessible(records)

	totals := make(map[string]*CountySummary)
	for i := range records {
		r := &records[i]
		if r.County == "" {
			continue
		}
		s := totals[r.County]
		if s == nil {
			s = &CountySummary{County: r.County}
			totals[r.County] = s
		}
		s.Total++
		if r.Destroyed() {
			s.Destroyed++
		}
	}

	out := make([]CountySummary, 0, len(totals))
	for _, s := range totals {
		s.Rate = float64(s.Destroyed) / float64(s.Total)
		out = append(out, *s)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Destroyed != out[b].Destroyed {
			return out[a].Destroyed > out[b].Destroyed
		}
		return out[a].County < out[b].County
	})
	return out
}

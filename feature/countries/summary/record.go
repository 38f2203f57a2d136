package summary

import (
	"cmp"
	"slices"
	"time"

	"country-catalog/feature/countries/models"
)

// TopN is the number of countries listed in a summary.
const TopN = 5

// Entry is one line of the top list.
type Entry struct {
	Name         string  `json:"name"`
	EstimatedGDP float64 `json:"estimated_gdp"`
}

// Record is the data rendered into the summary image.
type Record struct {
	TotalCountries int       `json:"total_countries"`
	Top            []Entry   `json:"top"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// Build assembles a summary record. Countries without a GDP are skipped,
// the rest are ordered by descending GDP and truncated to TopN.
func Build(total int, top []models.Country, now time.Time) Record {
	entries := make([]Entry, 0, TopN)
	for _, c := range top {
		if c.EstimatedGDP == nil {
			continue
		}
		entries = append(entries, Entry{Name: c.Name, EstimatedGDP: *c.EstimatedGDP})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.EstimatedGDP, a.EstimatedGDP)
	})
	if len(entries) > TopN {
		entries = entries[:TopN]
	}

	return Record{
		TotalCountries: total,
		Top:            entries,
		GeneratedAt:    now.UTC(),
	}
}

package hospitalrank

import (
	"sort"
	"strconv"
	"strings"
)

// RatedHospital is one entry of a sorted rate view. A nil Rate marks a
// value that failed numeric parsing ("Not Available" and friends).
type RatedHospital struct {
	Hospital string
	Rate     *float64
}

// RateView builds the sorted (hospital, rate) view for one outcome.
// Ordering: rate ascending, with every missing rate after every numeric
// value regardless of sign; ties (equal rates, or two missing) break by
// hospital name ascending. With excludeMissing, missing-rate entries
// are dropped from the result. Empty input yields an empty view.
func RateView(records []Record, outcome Outcome, excludeMissing bool) []RatedHospital {
	view := make([]RatedHospital, 0, len(records))
	for i := range records {
		rate := parseRate(outcome.Rate(&records[i]))
		if rate == nil && excludeMissing {
			continue
		}
		view = append(view, RatedHospital{
			Hospital: records[i].Hospital,
			Rate:     rate,
		})
	}

	sort.Slice(view, func(i, j int) bool {
		a, b := view[i], view[j]
		switch {
		case a.Rate == nil && b.Rate == nil:
			return a.Hospital < b.Hospital
		case a.Rate == nil:
			return false
		case b.Rate == nil:
			return true
		case *a.Rate != *b.Rate:
			return *a.Rate < *b.Rate
		default:
			return a.Hospital < b.Hospital
		}
	})

	return view
}

// parseRate parses a rate cell, returning nil for anything non-numeric.
func parseRate(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

package stats

import (
	"fmt"
	"sort"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// Chart-style bucketing over raw play events. These follow the same input
// contract as ForYear but feed time/platform breakdowns instead of top lists.

// MonthCount is one cell of the year-by-month play grid.
type MonthCount struct {
	Year  int
	Month int // 1-12
	Count int
}

// MonthCounts buckets plays by calendar month. The grid is dense: every month
// of every year between the earliest and latest play is present, months with
// no plays at zero. Returns nil for empty input.
func MonthCounts(plays []history.PlayEvent) []MonthCount {
	if len(plays) == 0 {
		return nil
	}

	counts := make(map[[2]int]int)
	minYear, maxYear := plays[0].Played.Year(), plays[0].Played.Year()
	for _, p := range plays {
		year := p.Played.Year()
		month := int(p.Played.Month())
		counts[[2]int{year, month}]++
		if year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}

	var grid []MonthCount
	for y := minYear; y <= maxYear; y++ {
		for m := 1; m <= 12; m++ {
			grid = append(grid, MonthCount{Year: y, Month: m, Count: counts[[2]int{y, m}]})
		}
	}
	return grid
}

// ClockMinutes buckets listening time onto a 12-hour clock, split into AM and
// PM halves. Index i holds the minutes listened during clock hour i (0 = 12
// o'clock).
func ClockMinutes(plays []history.PlayEvent) (am, pm [12]float64) {
	for _, p := range plays {
		hour := p.Played.Hour()
		minutes := MsToMinutes(p.MsPlayed)
		if hour < 12 {
			am[hour%12] += minutes
		} else {
			pm[hour%12] += minutes
		}
	}
	return am, pm
}

// PlatformMonthCount is one (month, platform) bucket.
type PlatformMonthCount struct {
	YearMonth string // "2006-01"
	Platform  string
	Count     int
}

// PlatformMonthCounts buckets plays by month and grouped platform, sorted by
// month then platform.
func PlatformMonthCounts(plays []history.PlayEvent, grouping PlatformGrouping) []PlatformMonthCount {
	type key struct {
		yearMonth string
		platform  string
	}
	counts := make(map[key]int)
	for _, p := range plays {
		k := key{
			yearMonth: fmt.Sprintf("%04d-%02d", p.Played.Year(), int(p.Played.Month())),
			platform:  GroupPlatform(p.Platform, grouping),
		}
		counts[k]++
	}

	out := make([]PlatformMonthCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, PlatformMonthCount{YearMonth: k.yearMonth, Platform: k.platform, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].YearMonth != out[j].YearMonth {
			return out[i].YearMonth < out[j].YearMonth
		}
		return out[i].Platform < out[j].Platform
	})
	return out
}

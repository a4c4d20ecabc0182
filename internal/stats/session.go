package stats

import (
	"sort"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// Session holds one load's ingestion results so stats can be recomputed for
// any scope or top-N without re-reading files. Loading a new export replaces
// the whole session; nothing here is mutated after construction.
type Session struct {
	Tracks   *history.Result
	Episodes *history.Result
	TopN     int
}

func NewSession(tracks, episodes *history.Result, topN int) *Session {
	return &Session{Tracks: tracks, Episodes: episodes, TopN: topN}
}

// Years returns every year present in either the track or the episode
// dataset, ascending.
func (s *Session) Years() []int {
	seen := make(map[int]bool)
	for y := range s.Tracks.PlaysByYear {
		seen[y] = true
	}
	for y := range s.Episodes.PlaysByYear {
		seen[y] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Year aggregates one scope: 0 for all-time, otherwise a calendar year.
func (s *Session) Year(year int) *YearStats {
	if year == 0 {
		return ForYear(s.Tracks.Plays, s.Episodes.Plays, s.TopN)
	}
	return ForYear(s.Tracks.PlaysByYear[year], s.Episodes.PlaysByYear[year], s.TopN)
}

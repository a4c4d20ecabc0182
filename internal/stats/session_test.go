package stats

import (
	"reflect"
	"testing"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

func resultFromPlays(plays []history.PlayEvent) *history.Result {
	r := &history.Result{
		Plays:       plays,
		PlaysByYear: make(map[int][]history.PlayEvent),
		SkipCounts:  make(map[string]*history.SkipRecord),
		Countries:   make(map[string]int),
	}
	for _, p := range plays {
		year := p.Played.Year()
		r.PlaysByYear[year] = append(r.PlaysByYear[year], p)
	}
	return r
}

func TestSessionYearsUnion(t *testing.T) {
	tracks := resultFromPlays([]history.PlayEvent{
		trackPlay("t1", "A", "X", "", 1000, "2024-01-01T10:00:00Z"),
		trackPlay("t2", "B", "X", "", 1000, "2022-01-01T10:00:00Z"),
	})
	episodes := resultFromPlays([]history.PlayEvent{
		episodePlay("e1", "Ep 1", "Show P", 1000, "2023-01-01T10:00:00Z"),
		episodePlay("e2", "Ep 2", "Show P", 1000, "2022-06-01T10:00:00Z"),
	})

	session := NewSession(tracks, episodes, 5)

	got := session.Years()
	want := []int{2022, 2023, 2024}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Years() = %v, want %v", got, want)
	}
}

func TestSessionYearScoping(t *testing.T) {
	tracks := resultFromPlays([]history.PlayEvent{
		trackPlay("t1", "A", "X", "", 60000, "2023-01-01T10:00:00Z"),
		trackPlay("t1", "A", "X", "", 60000, "2024-01-01T10:00:00Z"),
		trackPlay("t2", "B", "X", "", 60000, "2024-06-01T10:00:00Z"),
	})
	episodes := resultFromPlays(nil)

	session := NewSession(tracks, episodes, 5)

	all := session.Year(0)
	if len(all.PlaysByDate) != 3 {
		t.Errorf("all-time plays = %d, want 3", len(all.PlaysByDate))
	}
	if all.UniqueTracks["t1"].Plays != 2 {
		t.Errorf("all-time t1 plays = %d, want 2", all.UniqueTracks["t1"].Plays)
	}

	y2024 := session.Year(2024)
	if len(y2024.PlaysByDate) != 2 {
		t.Errorf("2024 plays = %d, want 2", len(y2024.PlaysByDate))
	}
	if y2024.UniqueTracks["t1"].Plays != 1 {
		t.Errorf("2024 t1 plays = %d, want 1", y2024.UniqueTracks["t1"].Plays)
	}

	empty := session.Year(1999)
	if !empty.Empty() {
		t.Errorf("Empty() = false for a year with no plays")
	}
}

func TestSessionTopNChange(t *testing.T) {
	tracks := resultFromPlays([]history.PlayEvent{
		trackPlay("t1", "A", "X", "", 1000, "2023-01-01T10:00:00Z"),
		trackPlay("t2", "B", "X", "", 1000, "2023-01-02T10:00:00Z"),
		trackPlay("t3", "C", "X", "", 1000, "2023-01-03T10:00:00Z"),
	})
	episodes := resultFromPlays(nil)

	session := NewSession(tracks, episodes, 2)
	if got := len(session.Year(0).TopTracks); got != 2 {
		t.Errorf("len(TopTracks) with TopN=2 is %d, want 2", got)
	}

	// Re-ranking is a pure recompute over the same results.
	session.TopN = 3
	if got := len(session.Year(0).TopTracks); got != 3 {
		t.Errorf("len(TopTracks) with TopN=3 is %d, want 3", got)
	}
}

package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/stats"
)

func testEvent(t *testing.T, uri, track, artist, album, ts string, ms int64) history.PlayEvent {
	t.Helper()
	played, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatal(err)
	}
	return history.PlayEvent{
		Ts:         ts,
		MsPlayed:   ms,
		TrackURI:   uri,
		TrackName:  track,
		ArtistName: artist,
		AlbumName:  album,
		Played:     played,
	}
}

func testEpisodeEvent(t *testing.T, uri, episode, show, ts string, ms int64) history.PlayEvent {
	t.Helper()
	played, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatal(err)
	}
	return history.PlayEvent{
		Ts:          ts,
		MsPlayed:    ms,
		EpisodeURI:  uri,
		EpisodeName: episode,
		ShowName:    show,
		Played:      played,
	}
}

func testResult(plays []history.PlayEvent) *history.Result {
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

func newTestSession(t *testing.T, topN int) *stats.Session {
	t.Helper()
	tracks := testResult([]history.PlayEvent{
		testEvent(t, "t1", "Song A", "Artist X", "Album 1", "2023-01-01T10:00:00Z", 60000),
		testEvent(t, "t1", "Song A", "Artist X", "Album 1", "2023-02-01T10:00:00Z", 60000),
		testEvent(t, "t2", "Song B", "Artist Y", "Album 2", "2023-03-01T10:00:00Z", 120000),
		testEvent(t, "t3", "Song C", "Artist X", "Album 1", "2024-01-01T10:00:00Z", 30000),
	})
	episodes := testResult([]history.PlayEvent{
		testEpisodeEvent(t, "e1", "Ep 1", "Show P", "2023-05-01T10:00:00Z", 600000),
	})
	return stats.NewSession(tracks, episodes, topN)
}

func TestPrintTopN(t *testing.T) {
	session := newTestSession(t, 5)

	var out bytes.Buffer
	if err := printTopN(&out, session, 0, 2, 2, 2, 2); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		"Top Lists for All Time",
		"Song Plays: 4",
		"## Top 2 Tracks",
		"1. Song A - Artist X (2 plays, 2m)",
		"## Top 2 Artists",
		"1. Artist X (3 plays,",
		"## Top 2 Albums",
		"1. Album 1 - Artist X (3 track plays,",
		"## Top 2 Podcasts",
		"1. Show P (10m, 1 plays, 1 episodes)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintTopNYearScope(t *testing.T) {
	session := newTestSession(t, 5)

	var out bytes.Buffer
	if err := printTopN(&out, session, 2024, 3, 3, 3, 3); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "Top Lists for 2024") {
		t.Errorf("output missing the 2024 header:\n%s", got)
	}
	if !strings.Contains(got, "Song Plays: 1") {
		t.Errorf("2024 scope should have exactly one play:\n%s", got)
	}
	if strings.Contains(got, "Song B") {
		t.Errorf("2024 scope should not include a 2023-only track:\n%s", got)
	}
}

func TestPrintTopNDoesNotMutateSession(t *testing.T) {
	session := newTestSession(t, 5)

	var out bytes.Buffer
	if err := printTopN(&out, session, 0, 50, 50, 50, 50); err != nil {
		t.Fatal(err)
	}

	if session.TopN != 5 {
		t.Errorf("session.TopN = %d after printTopN, want 5", session.TopN)
	}
}

package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

func trackPlay(uri, track, artist, album string, ms int64, ts string) history.PlayEvent {
	played, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
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

func episodePlay(uri, episode, show string, ms int64, ts string) history.PlayEvent {
	played, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
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

func TestForYearCountsMatchInput(t *testing.T) {
	plays := []history.PlayEvent{
		trackPlay("t1", "Song A", "Artist X", "Album 1", 60000, "2023-06-01T10:00:00Z"),
		trackPlay("t1", "Song A", "Artist X", "Album 1", 120000, "2023-06-02T10:00:00Z"),
		trackPlay("t2", "Song B", "Artist X", "Album 1", 30000, "2023-06-03T10:00:00Z"),
		trackPlay("t3", "Song C", "Artist Y", "Album 2", 0, "2023-06-04T10:00:00Z"),
	}

	ys := ForYear(plays, nil, 5)

	totalPlays := 0
	var totalMs int64
	for _, s := range ys.UniqueTracks {
		totalPlays += s.Plays
		totalMs += s.Ms
	}
	if totalPlays != len(plays) {
		t.Errorf("track plays sum to %d, want %d", totalPlays, len(plays))
	}
	if totalMs != 210000 {
		t.Errorf("track ms sum to %d, want 210000", totalMs)
	}

	totalPlays = 0
	for _, s := range ys.UniqueArtists {
		totalPlays += s.Plays
	}
	if totalPlays != len(plays) {
		t.Errorf("artist plays sum to %d, want %d", totalPlays, len(plays))
	}

	if got := ys.UniqueTracks["t1"]; got.Plays != 2 || got.Ms != 180000 {
		t.Errorf("t1 = {plays: %d, ms: %d}, want {plays: 2, ms: 180000}", got.Plays, got.Ms)
	}
	if got := ys.UniqueTracks["t1"].Artist; got != "Artist X" {
		t.Errorf("t1 artist = %q, want %q", got, "Artist X")
	}
}

func TestForYearTopTracksOrdering(t *testing.T) {
	plays := []history.PlayEvent{
		trackPlay("t1", "A", "X", "", 1000, "2023-01-01T10:00:00Z"),
		trackPlay("t2", "B", "X", "", 1000, "2023-01-02T10:00:00Z"),
		trackPlay("t2", "B", "X", "", 1000, "2023-01-03T10:00:00Z"),
		trackPlay("t3", "C", "X", "", 1000, "2023-01-04T10:00:00Z"),
		trackPlay("t3", "C", "X", "", 1000, "2023-01-05T10:00:00Z"),
		trackPlay("t3", "C", "X", "", 1000, "2023-01-06T10:00:00Z"),
	}

	ys := ForYear(plays, nil, 2)

	if len(ys.TopTracks) != 2 {
		t.Fatalf("len(TopTracks) = %d, want 2", len(ys.TopTracks))
	}
	if ys.TopTracks[0].URI != "t3" || ys.TopTracks[1].URI != "t2" {
		t.Errorf("TopTracks = [%s, %s], want [t3, t2]",
			ys.TopTracks[0].URI, ys.TopTracks[1].URI)
	}
}

func TestForYearTieBreakKeepsFirstEncounterOrder(t *testing.T) {
	// t1 and t2 both have 2 plays; t1 appears first in the input and must
	// come first in the ranking. Total time is deliberately higher for t2 to
	// prove no secondary sort key is applied.
	plays := []history.PlayEvent{
		trackPlay("t1", "A", "X", "", 1000, "2023-01-01T10:00:00Z"),
		trackPlay("t2", "B", "X", "", 900000, "2023-01-02T10:00:00Z"),
		trackPlay("t1", "A", "X", "", 1000, "2023-01-03T10:00:00Z"),
		trackPlay("t2", "B", "X", "", 900000, "2023-01-04T10:00:00Z"),
	}

	ys := ForYear(plays, nil, 5)

	if ys.TopTracks[0].URI != "t1" || ys.TopTracks[1].URI != "t2" {
		t.Errorf("TopTracks = [%s, %s], want [t1, t2]",
			ys.TopTracks[0].URI, ys.TopTracks[1].URI)
	}
}

func TestForYearTopNShorterThanN(t *testing.T) {
	plays := []history.PlayEvent{
		trackPlay("t1", "A", "X", "", 1000, "2023-01-01T10:00:00Z"),
	}

	ys := ForYear(plays, nil, 5)

	if len(ys.TopTracks) != 1 {
		t.Errorf("len(TopTracks) = %d, want 1 (no padding)", len(ys.TopTracks))
	}
}

func TestForYearPodcastsRankByTime(t *testing.T) {
	podcasts := []history.PlayEvent{
		// Show P: three short plays. Show Q: one long play. Q must rank
		// first because podcasts rank by time, not play count.
		episodePlay("e1", "Ep 1", "Show P", 1000, "2023-01-01T10:00:00Z"),
		episodePlay("e2", "Ep 2", "Show P", 1000, "2023-01-02T10:00:00Z"),
		episodePlay("e3", "Ep 3", "Show P", 1000, "2023-01-03T10:00:00Z"),
		episodePlay("e4", "Ep 4", "Show Q", 3600000, "2023-01-04T10:00:00Z"),
	}

	ys := ForYear(nil, podcasts, 5)

	if len(ys.TopPodcasts) != 2 {
		t.Fatalf("len(TopPodcasts) = %d, want 2", len(ys.TopPodcasts))
	}
	if ys.TopPodcasts[0].Show != "Show Q" {
		t.Errorf("top podcast = %q, want %q", ys.TopPodcasts[0].Show, "Show Q")
	}
	if got := ys.UniquePodcasts["Show P"].EpisodeCount(); got != 3 {
		t.Errorf("Show P episode count = %d, want 3", got)
	}
	if got := ys.UniqueEpisodes["e1"]; got.Plays != 1 || got.Episode != "Ep 1" {
		t.Errorf("e1 = %+v, want 1 play of 'Ep 1'", got)
	}
}

func TestForYearAlbumKeyDisambiguates(t *testing.T) {
	plays := []history.PlayEvent{
		trackPlay("t1", "A", "Artist X", "Greatest Hits", 1000, "2023-01-01T10:00:00Z"),
		trackPlay("t2", "B", "Artist Y", "Greatest Hits", 1000, "2023-01-02T10:00:00Z"),
	}

	ys := ForYear(plays, nil, 5)

	if len(ys.UniqueAlbums) != 2 {
		t.Errorf("len(UniqueAlbums) = %d, want 2 (same title, different artists)", len(ys.UniqueAlbums))
	}
	if _, ok := ys.UniqueAlbums[AlbumKey("Greatest Hits", "Artist X")]; !ok {
		t.Errorf("missing album key for Artist X")
	}
}

func TestForYearEmptyScope(t *testing.T) {
	podcasts := []history.PlayEvent{
		episodePlay("e1", "Ep 1", "Show P", 60000, "2023-01-01T10:00:00Z"),
	}

	ys := ForYear(nil, podcasts, 5)

	if !ys.Empty() {
		t.Errorf("Empty() = false for a scope with no track plays")
	}
	if ys.PlayTime != "0s" {
		t.Errorf("PlayTime = %q, want \"0s\"", ys.PlayTime)
	}
	if len(ys.UniquePodcasts) != 1 {
		t.Errorf("len(UniquePodcasts) = %d, want 1", len(ys.UniquePodcasts))
	}
	if ys.PodcastPlayTime != "1m" {
		t.Errorf("PodcastPlayTime = %q, want \"1m\"", ys.PodcastPlayTime)
	}
}

func TestForYearPlaysByDateSorted(t *testing.T) {
	plays := []history.PlayEvent{
		trackPlay("t2", "B", "X", "", 1000, "2023-06-01T10:00:00Z"),
		trackPlay("t1", "A", "X", "", 1000, "2023-01-01T10:00:00Z"),
		trackPlay("t3", "C", "X", "", 1000, "2023-12-01T10:00:00Z"),
	}

	ys := ForYear(plays, nil, 5)

	if ys.FirstPlay().TrackURI != "t1" {
		t.Errorf("first play = %q, want t1", ys.FirstPlay().TrackURI)
	}
	if ys.LastPlay().TrackURI != "t3" {
		t.Errorf("last play = %q, want t3", ys.LastPlay().TrackURI)
	}
}

func TestForYearIdempotent(t *testing.T) {
	plays := []history.PlayEvent{
		trackPlay("t1", "Song A", "Artist X", "Album 1", 60000, "2023-01-01T10:00:00Z"),
		trackPlay("t2", "Song B", "Artist Y", "Album 2", 120000, "2023-06-15T10:00:00Z"),
	}
	podcasts := []history.PlayEvent{
		episodePlay("e1", "Ep 1", "Show P", 60000, "2023-03-01T10:00:00Z"),
	}

	first := ForYear(plays, podcasts, 5)
	second := ForYear(plays, podcasts, 5)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ForYear is not idempotent: %+v != %+v", first, second)
	}
}

func TestForYearAggregatesRepeatPlays(t *testing.T) {
	// Two plays of the same track in different years, aggregated all-time.
	plays := []history.PlayEvent{
		trackPlay("t1", "Song A", "Artist X", "", 60000, "2023-01-01T10:00:00Z"),
		trackPlay("t1", "Song A", "Artist X", "", 120000, "2024-06-15T10:00:00Z"),
	}

	ys := ForYear(plays, nil, 5)

	got := ys.UniqueTracks["t1"]
	if got.Plays != 2 || got.Ms != 180000 {
		t.Errorf("t1 = {plays: %d, ms: %d}, want {plays: 2, ms: 180000}", got.Plays, got.Ms)
	}
	if len(ys.TopTracks) != 1 || ys.TopTracks[0].URI != "t1" {
		t.Errorf("TopTracks = %+v, want a single t1 entry", ys.TopTracks)
	}
	if ys.PlayTime != "3m" {
		t.Errorf("PlayTime = %q, want \"3m\"", ys.PlayTime)
	}
	if ys.PlayTimeMinutes != 3.0 {
		t.Errorf("PlayTimeMinutes = %f, want 3.0", ys.PlayTimeMinutes)
	}
}

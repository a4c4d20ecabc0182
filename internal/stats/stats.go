package stats

import (
	"sort"

	"github.com/ademuri/spotify-history-tools/internal/history"
)

// ForYear aggregates one scope's track plays and podcast plays into YearStats,
// ranking the top topN entries per category. Pure function of its inputs: the
// same events and topN always produce the same YearStats.
//
// Ranking is by play count for tracks, artists and albums, and by listening
// time for podcasts - show consumption is better measured by duration than by
// episode count. Ties keep first-encounter order; the sort is stable over the
// order keys first appeared in the input.
func ForYear(plays, podcastPlays []history.PlayEvent, topN int) *YearStats {
	y := &YearStats{}

	var trackEntries []TrackEntry
	y.UniqueTracks, trackEntries = uniqueTracks(plays)

	var artistEntries []ArtistEntry
	y.UniqueArtists, artistEntries = uniqueArtists(plays)

	var albumEntries []AlbumEntry
	y.UniqueAlbums, albumEntries = uniqueAlbums(plays)

	var podcastEntries []PodcastEntry
	y.UniquePodcasts, podcastEntries = uniquePodcasts(podcastPlays)

	y.UniqueEpisodes = uniqueEpisodes(podcastPlays)

	y.TopTracks = rank(trackEntries, topN, func(e TrackEntry) int64 { return int64(e.Stats.Plays) })
	y.TopArtists = rank(artistEntries, topN, func(e ArtistEntry) int64 { return int64(e.Stats.Plays) })
	y.TopAlbums = rank(albumEntries, topN, func(e AlbumEntry) int64 { return int64(e.Stats.Plays) })
	y.TopPodcasts = rank(podcastEntries, topN, func(e PodcastEntry) int64 { return e.Stats.Ms })

	playMs := PlayTimeMs(plays)
	y.PlayTime = MsToTime(playMs)
	y.PlayTimeMinutes = MsToMinutes(playMs)

	podcastMs := PlayTimeMs(podcastPlays)
	y.PodcastPlayTime = MsToTime(podcastMs)
	y.PodcastPlayTimeMinutes = MsToMinutes(podcastMs)

	if len(plays) > 0 {
		byDate := make([]history.PlayEvent, len(plays))
		copy(byDate, plays)
		sort.SliceStable(byDate, func(i, j int) bool {
			return byDate[i].Played.Before(byDate[j].Played)
		})
		y.PlaysByDate = byDate
	}

	return y
}

// PlayTimeMs sums milliseconds played across events.
func PlayTimeMs(plays []history.PlayEvent) int64 {
	var ms int64
	for _, p := range plays {
		ms += p.MsPlayed
	}
	return ms
}

// rank returns the top n entries by score, descending. The stable sort keeps
// insertion order for ties. Shorter inputs come back whole, unpadded.
func rank[E any](entries []E, n int, score func(E) int64) []E {
	sorted := make([]E, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return score(sorted[i]) > score(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func uniqueTracks(plays []history.PlayEvent) (map[string]*TrackStats, []TrackEntry) {
	unique := make(map[string]*TrackStats)
	var entries []TrackEntry

	for _, p := range plays {
		s := unique[p.TrackURI]
		if s == nil {
			s = &TrackStats{Artist: p.ArtistName, Track: p.TrackName}
			unique[p.TrackURI] = s
			entries = append(entries, TrackEntry{URI: p.TrackURI, Stats: s})
		}
		s.Plays++
		s.Ms += p.MsPlayed
	}
	return unique, entries
}

func uniqueArtists(plays []history.PlayEvent) (map[string]*ArtistStats, []ArtistEntry) {
	unique := make(map[string]*ArtistStats)
	var entries []ArtistEntry

	for _, p := range plays {
		s := unique[p.ArtistName]
		if s == nil {
			s = &ArtistStats{}
			unique[p.ArtistName] = s
			entries = append(entries, ArtistEntry{Name: p.ArtistName, Stats: s})
		}
		s.Plays++
		s.Ms += p.MsPlayed
	}
	return unique, entries
}

func uniqueAlbums(plays []history.PlayEvent) (map[string]*AlbumStats, []AlbumEntry) {
	unique := make(map[string]*AlbumStats)
	var entries []AlbumEntry

	for _, p := range plays {
		key := AlbumKey(p.AlbumName, p.ArtistName)
		s := unique[key]
		if s == nil {
			s = &AlbumStats{Artist: p.ArtistName, Album: p.AlbumName}
			unique[key] = s
			entries = append(entries, AlbumEntry{Key: key, Stats: s})
		}
		s.Plays++
		s.Ms += p.MsPlayed
	}
	return unique, entries
}

func uniquePodcasts(plays []history.PlayEvent) (map[string]*PodcastStats, []PodcastEntry) {
	unique := make(map[string]*PodcastStats)
	var entries []PodcastEntry

	for _, p := range plays {
		s := unique[p.ShowName]
		if s == nil {
			s = &PodcastStats{UniqueEpisodes: make(map[string]struct{})}
			unique[p.ShowName] = s
			entries = append(entries, PodcastEntry{Show: p.ShowName, Stats: s})
		}
		s.Plays++
		s.Ms += p.MsPlayed
		s.UniqueEpisodes[p.EpisodeURI] = struct{}{}
	}
	return unique, entries
}

func uniqueEpisodes(plays []history.PlayEvent) map[string]*EpisodeStats {
	unique := make(map[string]*EpisodeStats)

	for _, p := range plays {
		s := unique[p.EpisodeURI]
		if s == nil {
			s = &EpisodeStats{Episode: p.EpisodeName}
			unique[p.EpisodeURI] = s
		}
		s.Plays++
		s.Ms += p.MsPlayed
	}
	return unique
}

package stats

import "github.com/ademuri/spotify-history-tools/internal/history"

// TrackStats aggregates plays of one track, keyed by track URI.
type TrackStats struct {
	Plays  int    `yaml:"plays"`
	Ms     int64  `yaml:"ms"`
	Artist string `yaml:"artist"`
	Track  string `yaml:"track"`
}

// ArtistStats aggregates plays of one artist, keyed by artist name.
type ArtistStats struct {
	Plays int   `yaml:"plays"`
	Ms    int64 `yaml:"ms"`
}

// AlbumStats aggregates plays of one album, keyed by album plus artist so
// same-titled albums by different artists stay separate.
type AlbumStats struct {
	Plays  int    `yaml:"plays"`
	Ms     int64  `yaml:"ms"`
	Artist string `yaml:"artist"`
	Album  string `yaml:"album"`
}

// PodcastStats aggregates plays of one show, keyed by show name.
type PodcastStats struct {
	Plays          int                 `yaml:"plays"`
	Ms             int64               `yaml:"ms"`
	UniqueEpisodes map[string]struct{} `yaml:"-"`
}

// EpisodeCount returns how many distinct episodes of the show were played.
func (p *PodcastStats) EpisodeCount() int {
	return len(p.UniqueEpisodes)
}

// EpisodeStats aggregates plays of one episode, keyed by episode URI.
type EpisodeStats struct {
	Plays   int    `yaml:"plays"`
	Ms      int64  `yaml:"ms"`
	Episode string `yaml:"episode"`
}

type TrackEntry struct {
	URI   string      `yaml:"uri"`
	Stats *TrackStats `yaml:"stats"`
}

type ArtistEntry struct {
	Name  string       `yaml:"name"`
	Stats *ArtistStats `yaml:"stats"`
}

type AlbumEntry struct {
	Key   string      `yaml:"key"`
	Stats *AlbumStats `yaml:"stats"`
}

type PodcastEntry struct {
	Show  string        `yaml:"show"`
	Stats *PodcastStats `yaml:"stats"`
}

// YearStats is the aggregation output for one scope: all-time (year 0) or a
// single calendar year. It is rebuilt from the ingestion result whenever the
// top-N setting changes, never mutated in place.
type YearStats struct {
	UniqueTracks   map[string]*TrackStats
	UniqueArtists  map[string]*ArtistStats
	UniqueAlbums   map[string]*AlbumStats
	UniquePodcasts map[string]*PodcastStats
	UniqueEpisodes map[string]*EpisodeStats

	TopTracks   []TrackEntry
	TopArtists  []ArtistEntry
	TopAlbums   []AlbumEntry
	TopPodcasts []PodcastEntry

	PlayTime        string
	PlayTimeMinutes float64

	PodcastPlayTime        string
	PodcastPlayTimeMinutes float64

	// PlaysByDate is the track input sorted ascending by timestamp. Check
	// Empty before reading the first or last element.
	PlaysByDate []history.PlayEvent
}

// Empty reports whether the scope had no track plays. First/last play are
// undefined for an empty scope and must not be read.
func (y *YearStats) Empty() bool {
	return len(y.PlaysByDate) == 0
}

func (y *YearStats) FirstPlay() history.PlayEvent {
	return y.PlaysByDate[0]
}

func (y *YearStats) LastPlay() history.PlayEvent {
	return y.PlaysByDate[len(y.PlaysByDate)-1]
}

// AlbumKey builds the composite uniqueness key for an album.
func AlbumKey(album, artist string) string {
	return album + "-" + artist
}

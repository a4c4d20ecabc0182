package history

import "time"

// PlayEvent is one listening event from a Spotify extended streaming history
// export. Field names match the export's JSON keys. Track fields are empty for
// podcast episode events and vice versa.
type PlayEvent struct {
	Ts          string `json:"ts" yaml:"ts"`
	MsPlayed    int64  `json:"ms_played" yaml:"ms_played"`
	TrackURI    string `json:"spotify_track_uri" yaml:"spotify_track_uri,omitempty"`
	TrackName   string `json:"master_metadata_track_name" yaml:"track,omitempty"`
	ArtistName  string `json:"master_metadata_album_artist_name" yaml:"artist,omitempty"`
	AlbumName   string `json:"master_metadata_album_album_name" yaml:"album,omitempty"`
	EpisodeURI  string `json:"spotify_episode_uri" yaml:"spotify_episode_uri,omitempty"`
	ShowName    string `json:"episode_show_name" yaml:"show,omitempty"`
	EpisodeName string `json:"episode_name" yaml:"episode,omitempty"`
	Skipped     bool   `json:"skipped" yaml:"skipped,omitempty"`
	Shuffle     bool   `json:"shuffle" yaml:"shuffle,omitempty"`
	ConnCountry string `json:"conn_country" yaml:"conn_country,omitempty"`
	Platform    string `json:"platform" yaml:"platform,omitempty"`

	// Played is Ts parsed by the loader. Events whose Ts doesn't parse are
	// dropped during ingestion, so this is always valid on accepted events.
	Played time.Time `json:"-" yaml:"-"`
}

// EventKind selects which kind of event an ingestion pass accepts.
type EventKind int

const (
	KindTrack EventKind = iota
	KindEpisode
)

func (k EventKind) String() string {
	switch k {
	case KindTrack:
		return "track"
	case KindEpisode:
		return "episode"
	}
	return "unknown"
}

// identifier returns the field that must be non-empty for an event to be
// accepted under this kind.
func (k EventKind) identifier(e *PlayEvent) string {
	if k == KindEpisode {
		return e.EpisodeURI
	}
	return e.TrackURI
}

// UnknownCountry is the sentinel used when an event has no connection country.
const UnknownCountry = "Unknown"

/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/spotify-history-tools/internal/stats"
)

var reportCmd = &cobra.Command{
	Use:   "report [year]",
	Short: "Generates a YAML report of listening statistics",
	Long: `Emits the aggregated statistics for a scope as YAML, for consumption by
other tools. The numbers are identical to what 'summary' and 'share' show.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := parseYearFromArgs(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
		session, err := loadSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
		if err := writeReport(os.Stdout, session, year); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// Report is the YAML document emitted by the report command.
type Report struct {
	Scope                string              `yaml:"scope"`
	SongPlays            int                 `yaml:"song_plays"`
	PlayTime             string              `yaml:"play_time"`
	PlayTimeMinutes      float64             `yaml:"play_time_minutes"`
	UniqueTracks         int                 `yaml:"unique_tracks"`
	UniqueArtists        int                 `yaml:"unique_artists"`
	UniqueAlbums         int                 `yaml:"unique_albums"`
	FirstPlay            string              `yaml:"first_play,omitempty"`
	LastPlay             string              `yaml:"last_play,omitempty"`
	PodcastPlayTime      string              `yaml:"podcast_play_time"`
	PodcastMinutes       float64             `yaml:"podcast_play_time_minutes"`
	UniquePodcasts       int                 `yaml:"unique_podcasts"`
	UniqueEpisodes       int                 `yaml:"unique_episodes"`
	TopTracks            []stats.TrackEntry  `yaml:"top_tracks"`
	TopArtists           []stats.ArtistEntry `yaml:"top_artists"`
	TopAlbums            []stats.AlbumEntry  `yaml:"top_albums"`
	TopPodcasts          []stats.PodcastEntry `yaml:"top_podcasts"`
}

func writeReport(out io.Writer, session *stats.Session, year int) error {
	ys := session.Year(year)

	report := Report{
		Scope:           scopeName(year),
		SongPlays:       len(ys.PlaysByDate),
		PlayTime:        ys.PlayTime,
		PlayTimeMinutes: ys.PlayTimeMinutes,
		UniqueTracks:    len(ys.UniqueTracks),
		UniqueArtists:   len(ys.UniqueArtists),
		UniqueAlbums:    len(ys.UniqueAlbums),
		PodcastPlayTime: ys.PodcastPlayTime,
		PodcastMinutes:  ys.PodcastPlayTimeMinutes,
		UniquePodcasts:  len(ys.UniquePodcasts),
		UniqueEpisodes:  len(ys.UniqueEpisodes),
		TopTracks:       ys.TopTracks,
		TopArtists:      ys.TopArtists,
		TopAlbums:       ys.TopAlbums,
		TopPodcasts:     ys.TopPodcasts,
	}
	if !ys.Empty() {
		report.FirstPlay = fmt.Sprintf("%s - %s (%s)",
			ys.FirstPlay().TrackName, ys.FirstPlay().ArtistName, ys.FirstPlay().Played.Format("2006-01-02"))
		report.LastPlay = fmt.Sprintf("%s - %s (%s)",
			ys.LastPlay().TrackName, ys.LastPlay().ArtistName, ys.LastPlay().Played.Format("2006-01-02"))
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}

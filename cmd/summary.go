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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-history-tools/internal/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [year]",
	Short: "Shows listening statistics for all time or a single year",
	Long: `Without an argument, summarizes the whole history. With a year argument
(e.g. '2023'), summarizes just that year.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := parseYearFromArgs(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		session, err := loadSession()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printSummary(os.Stdout, session, year); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(out io.Writer, session *stats.Session, year int) error {
	ys := session.Year(year)

	fmt.Fprintf(out, "Spotify Summary for %s\n\n", scopeName(year))

	if ys.Empty() && len(ys.UniqueEpisodes) == 0 {
		fmt.Fprintln(out, "No listening data for this scope.")
		return nil
	}

	fmt.Fprintf(out, "Song Plays: %d\n", len(ys.PlaysByDate))
	fmt.Fprintf(out, "Listening Time: %s (%.0f minutes)\n", ys.PlayTime, ys.PlayTimeMinutes)
	fmt.Fprintf(out, "Unique Tracks: %d\n", len(ys.UniqueTracks))
	fmt.Fprintf(out, "Unique Artists: %d\n", len(ys.UniqueArtists))
	fmt.Fprintf(out, "Unique Albums: %d\n", len(ys.UniqueAlbums))
	if !ys.Empty() {
		first := ys.FirstPlay()
		last := ys.LastPlay()
		fmt.Fprintf(out, "First Song: %s - %s (%s)\n",
			first.TrackName, first.ArtistName, first.Played.Format("2006-01-02"))
		fmt.Fprintf(out, "Last Song: %s - %s (%s)\n",
			last.TrackName, last.ArtistName, last.Played.Format("2006-01-02"))
	}
	fmt.Fprintf(out, "Podcast Listening Time: %s (%.0f minutes)\n",
		ys.PodcastPlayTime, ys.PodcastPlayTimeMinutes)
	fmt.Fprintf(out, "Podcasts: %d\n", len(ys.UniquePodcasts))
	fmt.Fprintf(out, "Episodes: %d\n\n", len(ys.UniqueEpisodes))

	fmt.Fprintf(out, "## Top %d Tracks\n", session.TopN)
	fmt.Fprint(out, topTracksAnalysis(ys))

	fmt.Fprintf(out, "## Top %d Artists\n", session.TopN)
	fmt.Fprint(out, topArtistsAnalysis(ys))

	fmt.Fprintf(out, "## Top %d Albums\n", session.TopN)
	fmt.Fprint(out, topAlbumsAnalysis(ys))

	fmt.Fprintf(out, "## Top %d Podcasts\n", session.TopN)
	fmt.Fprint(out, topPodcastsAnalysis(ys))

	return nil
}

func topTracksAnalysis(ys *stats.YearStats) Analysis {
	a := Analysis{results: [][]string{{"#", "Track", "Artist", "Plays", "Time"}}}
	if len(ys.TopTracks) == 0 {
		a.summary = "(no data)"
		return a
	}
	for i, e := range ys.TopTracks {
		a.results = append(a.results, []string{
			strconv.Itoa(i + 1), e.Stats.Track, e.Stats.Artist,
			strconv.Itoa(e.Stats.Plays), stats.MsToTime(e.Stats.Ms),
		})
	}
	return a
}

func topArtistsAnalysis(ys *stats.YearStats) Analysis {
	a := Analysis{results: [][]string{{"#", "Artist", "Plays", "Time"}}}
	if len(ys.TopArtists) == 0 {
		a.summary = "(no data)"
		return a
	}
	for i, e := range ys.TopArtists {
		a.results = append(a.results, []string{
			strconv.Itoa(i + 1), e.Name,
			strconv.Itoa(e.Stats.Plays), stats.MsToTime(e.Stats.Ms),
		})
	}
	return a
}

func topAlbumsAnalysis(ys *stats.YearStats) Analysis {
	a := Analysis{results: [][]string{{"#", "Album", "Artist", "Plays", "Time"}}}
	if len(ys.TopAlbums) == 0 {
		a.summary = "(no data)"
		return a
	}
	for i, e := range ys.TopAlbums {
		a.results = append(a.results, []string{
			strconv.Itoa(i + 1), e.Stats.Album, e.Stats.Artist,
			strconv.Itoa(e.Stats.Plays), stats.MsToTime(e.Stats.Ms),
		})
	}
	return a
}

func topPodcastsAnalysis(ys *stats.YearStats) Analysis {
	a := Analysis{results: [][]string{{"#", "Show", "Time", "Plays", "Episodes"}}}
	if len(ys.TopPodcasts) == 0 {
		a.summary = "(no data)"
		return a
	}
	for i, e := range ys.TopPodcasts {
		a.results = append(a.results, []string{
			strconv.Itoa(i + 1), e.Show, stats.MsToTime(e.Stats.Ms),
			strconv.Itoa(e.Stats.Plays), strconv.Itoa(e.Stats.EpisodeCount()),
		})
	}
	return a
}

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

	"github.com/ademuri/spotify-history-tools/internal/stats"
)

var (
	limitTracks   int
	limitArtists  int
	limitAlbums   int
	limitPodcasts int
)

var topNCmd = &cobra.Command{
	Use:   "top-n [year]",
	Short: "Generates a textual summary of the top tracks, artists, albums, and podcasts",
	Long: `Lists the highest-ranked entries per category for the whole history, or for a
single year. Tracks, artists, and albums rank by play count; podcasts rank by
listening time.`,
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
		if err := printTopN(os.Stdout, session, year, limitTracks, limitArtists, limitAlbums, limitPodcasts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topNCmd)
	topNCmd.Flags().IntVar(&limitTracks, "tracks", 10, "Number of top tracks to show")
	topNCmd.Flags().IntVar(&limitArtists, "artists", 10, "Number of top artists to show")
	topNCmd.Flags().IntVar(&limitAlbums, "albums", 10, "Number of top albums to show")
	topNCmd.Flags().IntVar(&limitPodcasts, "podcasts", 10, "Number of top podcasts to show")
}

func printTopN(out io.Writer, session *stats.Session, year, nTracks, nArtists, nAlbums, nPodcasts int) error {
	// One aggregation at the largest requested size, sliced per section.
	max := nTracks
	for _, n := range []int{nArtists, nAlbums, nPodcasts} {
		if n > max {
			max = n
		}
	}
	scoped := *session
	scoped.TopN = max
	ys := scoped.Year(year)

	fmt.Fprintf(out, "Top Lists for %s\n", scopeName(year))
	fmt.Fprintf(out, "Song Plays: %d, Listening Time: %s\n\n", len(ys.PlaysByDate), ys.PlayTime)

	if nTracks > 0 {
		fmt.Fprintf(out, "## Top %d Tracks\n", nTracks)
		for i, e := range clip(ys.TopTracks, nTracks) {
			fmt.Fprintf(out, "%d. %s - %s (%d plays, %s)\n",
				i+1, e.Stats.Track, e.Stats.Artist, e.Stats.Plays, stats.MsToTime(e.Stats.Ms))
		}
		fmt.Fprintln(out)
	}

	if nArtists > 0 {
		fmt.Fprintf(out, "## Top %d Artists\n", nArtists)
		for i, e := range clip(ys.TopArtists, nArtists) {
			fmt.Fprintf(out, "%d. %s (%d plays, %s)\n",
				i+1, e.Name, e.Stats.Plays, stats.MsToTime(e.Stats.Ms))
		}
		fmt.Fprintln(out)
	}

	if nAlbums > 0 {
		fmt.Fprintf(out, "## Top %d Albums\n", nAlbums)
		for i, e := range clip(ys.TopAlbums, nAlbums) {
			fmt.Fprintf(out, "%d. %s - %s (%d track plays, %s)\n",
				i+1, e.Stats.Album, e.Stats.Artist, e.Stats.Plays, stats.MsToTime(e.Stats.Ms))
		}
		fmt.Fprintln(out)
	}

	if nPodcasts > 0 {
		fmt.Fprintf(out, "## Top %d Podcasts\n", nPodcasts)
		for i, e := range clip(ys.TopPodcasts, nPodcasts) {
			fmt.Fprintf(out, "%d. %s (%s, %d plays, %d episodes)\n",
				i+1, e.Show, stats.MsToTime(e.Stats.Ms), e.Stats.Plays, e.Stats.EpisodeCount())
		}
		fmt.Fprintln(out)
	}

	return nil
}

func clip[E any](entries []E, n int) []E {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

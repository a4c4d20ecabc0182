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
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-history-tools/internal/stats"
)

var skipsNumber int

var skipsCmd = &cobra.Command{
	Use:   "skips",
	Short: "Shows the most-skipped tracks, shuffle usage, and listens per country",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := loadSession()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printSkips(os.Stdout, session, skipsNumber); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(skipsCmd)
	skipsCmd.Flags().IntVarP(&skipsNumber, "number", "c", 10, "number of results to return")
}

func printSkips(out io.Writer, session *stats.Session, numToReturn int) error {
	tracks := session.Tracks

	if len(tracks.Plays) == 0 {
		fmt.Fprintln(out, "No listening data.")
		return nil
	}

	type skipped struct {
		uri    string
		track  string
		artist string
		count  int
	}
	skips := make([]skipped, 0, len(tracks.SkipCounts))
	for uri, record := range tracks.SkipCounts {
		skips = append(skips, skipped{uri: uri, track: record.Track, artist: record.Artist, count: record.Count})
	}
	sort.Slice(skips, func(i, j int) bool {
		if skips[i].count != skips[j].count {
			return skips[i].count > skips[j].count
		}
		return skips[i].uri < skips[j].uri
	})
	if len(skips) > numToReturn {
		skips = skips[:numToReturn]
	}

	a := Analysis{results: [][]string{{"#", "Track", "Artist", "Skips"}}}
	for i, s := range skips {
		a.results = append(a.results, []string{
			strconv.Itoa(i + 1), s.track, s.artist, strconv.Itoa(s.count),
		})
	}
	shuffleRatio := float64(tracks.ShuffleCount) / float64(len(tracks.Plays)) * 100
	a.summary = fmt.Sprintf("Shuffle was on for %d of %d plays (%.1f%%)",
		tracks.ShuffleCount, len(tracks.Plays), shuffleRatio)

	fmt.Fprintln(out, "## Most Skipped Tracks")
	fmt.Fprint(out, a)
	fmt.Fprintln(out)

	type countryCount struct {
		country string
		count   int
	}
	countries := make([]countryCount, 0, len(tracks.Countries))
	for country, count := range tracks.Countries {
		countries = append(countries, countryCount{country: country, count: count})
	}
	sort.Slice(countries, func(i, j int) bool {
		if countries[i].count != countries[j].count {
			return countries[i].count > countries[j].count
		}
		return countries[i].country < countries[j].country
	})

	c := Analysis{results: [][]string{{"Country", "Plays"}}}
	for _, cc := range countries {
		c.results = append(c.results, []string{cc.country, strconv.Itoa(cc.count)})
	}

	fmt.Fprintln(out, "## Listens by Country")
	fmt.Fprint(out, c)
	return nil
}

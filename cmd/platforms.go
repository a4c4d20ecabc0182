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

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/stats"
)

var platformGrouping string

var platformsCmd = &cobra.Command{
	Use:   "platforms [year]",
	Short: "Shows plays per platform, by month and in total",
	Long: `Buckets plays by month and platform. The --grouping flag controls how raw
platform descriptors are bucketed: 'platform' (named platforms with an Other
bucket), 'specific-with-other' (keep unrecognized descriptors verbatim), or
'device-type' (broad device classes).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := parseYearFromArgs(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		grouping := stats.PlatformGrouping(platformGrouping)
		if !grouping.Valid() {
			fmt.Printf("Invalid grouping: %q\n", platformGrouping)
			os.Exit(1)
		}
		session, err := loadSession()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printPlatforms(os.Stdout, session, year, grouping); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
	platformsCmd.Flags().StringVar(&platformGrouping, "grouping", string(stats.GroupingPlatform),
		"How to group platforms: platform, specific-with-other, or device-type")
}

func printPlatforms(out io.Writer, session *stats.Session, year int, grouping stats.PlatformGrouping) error {
	plays := scopePlays(session.Tracks, year)
	if len(plays) == 0 {
		fmt.Fprintln(out, "No listening data for this scope.")
		return nil
	}

	fmt.Fprintf(out, "Platforms for %s\n\n", scopeName(year))

	totals := make(map[string]int)
	for _, bucket := range stats.PlatformMonthCounts(plays, grouping) {
		totals[bucket.Platform] += bucket.Count
	}
	type platformTotal struct {
		platform string
		count    int
	}
	sorted := make([]platformTotal, 0, len(totals))
	for platform, count := range totals {
		sorted = append(sorted, platformTotal{platform: platform, count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].platform < sorted[j].platform
	})

	a := Analysis{results: [][]string{{"Platform", "Plays"}}}
	for _, pt := range sorted {
		a.results = append(a.results, []string{pt.platform, strconv.Itoa(pt.count)})
	}
	fmt.Fprintln(out, "## Totals")
	fmt.Fprint(out, a)
	fmt.Fprintln(out)

	m := Analysis{results: [][]string{{"Month", "Platform", "Plays"}}}
	for _, bucket := range stats.PlatformMonthCounts(plays, grouping) {
		m.results = append(m.results, []string{
			bucket.YearMonth, bucket.Platform, strconv.Itoa(bucket.Count),
		})
	}
	fmt.Fprintln(out, "## By Month")
	fmt.Fprint(out, m)
	return nil
}

// scopePlays selects the track plays for a scope: all of them for 0, one
// year's bucket otherwise.
func scopePlays(result *history.Result, year int) []history.PlayEvent {
	if year == 0 {
		return result.Plays
	}
	return result.PlaysByYear[year]
}

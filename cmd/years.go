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

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Lists every year in the history with play counts and play time",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := loadSession()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printYears(os.Stdout, session); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(yearsCmd)
}

func printYears(out io.Writer, session *stats.Session) error {
	years := session.Years()
	if len(years) == 0 {
		fmt.Fprintln(out, "No listening data.")
		return nil
	}

	a := Analysis{results: [][]string{{"Year", "Song Plays", "Play Time", "Podcast Plays", "Podcast Time"}}}
	for _, y := range years {
		tracks := session.Tracks.PlaysByYear[y]
		episodes := session.Episodes.PlaysByYear[y]
		a.results = append(a.results, []string{
			strconv.Itoa(y),
			strconv.Itoa(len(tracks)),
			stats.MsToTime(stats.PlayTimeMs(tracks)),
			strconv.Itoa(len(episodes)),
			stats.MsToTime(stats.PlayTimeMs(episodes)),
		})
	}
	a.summary = fmt.Sprintf("Found %d song plays across %d years",
		len(session.Tracks.Plays), len(years))
	fmt.Fprint(out, a)
	return nil
}

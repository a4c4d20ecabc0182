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

var clockCmd = &cobra.Command{
	Use:   "clock [year]",
	Short: "Shows listening minutes per hour of day, split AM/PM",
	Args:  cobra.MaximumNArgs(1),
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
		if err := printClock(os.Stdout, session, year); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(clockCmd)
}

func printClock(out io.Writer, session *stats.Session, year int) error {
	plays := scopePlays(session.Tracks, year)
	if len(plays) == 0 {
		fmt.Fprintln(out, "No listening data for this scope.")
		return nil
	}

	am, pm := stats.ClockMinutes(plays)

	fmt.Fprintf(out, "Listening Clock for %s\n\n", scopeName(year))
	a := Analysis{results: [][]string{{"Hour", "AM (minutes)", "PM (minutes)"}}}
	for hour := 0; hour < 12; hour++ {
		label := hour
		if label == 0 {
			label = 12
		}
		a.results = append(a.results, []string{
			fmt.Sprintf("%d", label),
			fmt.Sprintf("%.0f", am[hour]),
			fmt.Sprintf("%.0f", pm[hour]),
		})
	}
	fmt.Fprint(out, a)
	return nil
}

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

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Shows a year-by-month grid of play counts",
	Long: `Every month between the first and last play is included, so gaps in
listening show up as zeros.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := loadSession()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printMonths(os.Stdout, session); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}

func printMonths(out io.Writer, session *stats.Session) error {
	grid := stats.MonthCounts(session.Tracks.Plays)
	if len(grid) == 0 {
		fmt.Fprintln(out, "No listening data.")
		return nil
	}

	a := Analysis{results: [][]string{
		{"Year", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	}}

	// The grid is dense and ordered: twelve consecutive cells per year.
	for i := 0; i < len(grid); i += 12 {
		row := make([]string, 0, 13)
		row = append(row, strconv.Itoa(grid[i].Year))
		for m := 0; m < 12; m++ {
			row = append(row, strconv.Itoa(grid[i+m].Count))
		}
		a.results = append(a.results, row)
	}

	fmt.Fprint(out, a)
	return nil
}

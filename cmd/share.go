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
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ademuri/spotify-history-tools/internal/stats"
)

var shareEmail string
var shareAllYears bool
var shareDryRun bool

var shareCmd = &cobra.Command{
	Use:   "share [year]",
	Short: "Generates a shareable text summary, optionally emailing it",
	Long: `Produces the same numbers as 'summary' in a compact shareable form. With
--email, sends it via SendGrid; --all-years sends one summary per year.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if shareEmail != "" && !shareDryRun {
			if viper.GetString("sendgrid_api_key") == "" {
				return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
			}
			if viper.GetString("from") == "" {
				return fmt.Errorf("required flag(s) \"from\" not set")
			}
		}
		return nil
	},
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
		if err := runShare(session, year); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().StringVar(&shareEmail, "email", "", "Email the summary to this address")
	shareCmd.Flags().BoolVar(&shareAllYears, "all-years", false, "Share one summary per year instead of a single scope")
	shareCmd.Flags().BoolVarP(&shareDryRun, "dry_run", "", false, "When true, just print instead of emailing")
}

func runShare(session *stats.Session, year int) error {
	scopes := []int{year}
	if shareAllYears {
		scopes = session.Years()
	}

	// One email per second when sending several summaries.
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	for _, scope := range scopes {
		text := buildShareSummary(session, scope)

		if shareEmail == "" {
			fmt.Println(text)
			continue
		}

		subject := fmt.Sprintf("Spotify Summary for %s", scopeName(scope))
		if shareDryRun {
			fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, text)
			continue
		}

		limiter.Wait(context.Background())
		if err := sendShareEmail(subject, text, shareEmail); err != nil {
			return fmt.Errorf("emailing summary for %s: %w", scopeName(scope), err)
		}
		fmt.Printf("Sent summary for %s to %s\n", scopeName(scope), shareEmail)
	}

	return nil
}

// buildShareSummary renders the share-card text for one scope. It reads the
// same YearStats as the summary command, so the two never disagree on a
// number.
func buildShareSummary(session *stats.Session, year int) string {
	ys := session.Year(year)

	var b strings.Builder
	fmt.Fprintf(&b, "Spotify Summary for %s\n", scopeName(year))
	fmt.Fprintf(&b, "Song Plays: %d\n", len(ys.PlaysByDate))
	fmt.Fprintf(&b, "Listening Time: %s (%.0f mins)\n", ys.PlayTime, math.Round(ys.PlayTimeMinutes))
	fmt.Fprintf(&b, "Tracks: %d\n", len(ys.UniqueTracks))
	fmt.Fprintf(&b, "Artists: %d\n", len(ys.UniqueArtists))
	fmt.Fprintf(&b, "Albums: %d\n", len(ys.UniqueAlbums))

	if !ys.Empty() {
		first := ys.FirstPlay()
		last := ys.LastPlay()
		fmt.Fprintf(&b, "First Song: %s - %s %s\n",
			first.TrackName, first.ArtistName, first.Played.Format("2006-01-02"))
		fmt.Fprintf(&b, "Last Song: %s - %s %s\n",
			last.TrackName, last.ArtistName, last.Played.Format("2006-01-02"))
	}

	fmt.Fprintf(&b, "Podcast Listening Time: %s (%.0f mins)\n",
		ys.PodcastPlayTime, math.Round(ys.PodcastPlayTimeMinutes))
	fmt.Fprintf(&b, "Podcasts: %d\n", len(ys.UniquePodcasts))
	fmt.Fprintf(&b, "Episodes: %d\n", len(ys.UniqueEpisodes))

	b.WriteString("\nTop Tracks\n")
	for i, e := range ys.TopTracks {
		fmt.Fprintf(&b, "%d. %s - %s - %d plays - %s\n",
			i+1, e.Stats.Track, e.Stats.Artist, e.Stats.Plays, stats.MsToTime(e.Stats.Ms))
	}

	b.WriteString("\nTop Artists\n")
	for i, e := range ys.TopArtists {
		fmt.Fprintf(&b, "%d. %s - %d plays - %s\n",
			i+1, e.Name, e.Stats.Plays, stats.MsToTime(e.Stats.Ms))
	}

	b.WriteString("\nTop Albums\n")
	for i, e := range ys.TopAlbums {
		fmt.Fprintf(&b, "%d. %s - %s - %d track plays - %s\n",
			i+1, e.Stats.Album, e.Stats.Artist, e.Stats.Plays, stats.MsToTime(e.Stats.Ms))
	}

	b.WriteString("\nTop Podcasts\n")
	for i, e := range ys.TopPodcasts {
		fmt.Fprintf(&b, "%d. %s - %d plays, %d eps - %s\n",
			i+1, e.Show, e.Stats.Plays, e.Stats.EpisodeCount(), stats.MsToTime(e.Stats.Ms))
	}

	return b.String()
}

func sendShareEmail(subject, body, toAddress string) error {
	from := mail.NewEmail("spotify-history-tools", viper.GetString("from"))
	to := mail.NewEmail(toAddress, toAddress)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))

	return retry.Do(
		func() error {
			response, err := client.Send(message)
			if err != nil {
				return err
			}
			if response.StatusCode >= 500 {
				return fmt.Errorf("sendgrid returned %d", response.StatusCode)
			}
			if response.StatusCode >= 400 {
				return retry.Unrecoverable(fmt.Errorf("sendgrid returned %d: %s", response.StatusCode, response.Body))
			}
			return nil
		},
	)
}

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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-history-tools/internal/history"
	"github.com/ademuri/spotify-history-tools/internal/stats"
)

var cfgFile string
var dataDir string
var topN int
var sendgridApiKey string
var fromAddress string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-history-tools",
	Short: "Performs analysis on Spotify extended streaming history exports",
	Long: `Reads the JSON files from a Spotify extended streaming history export and
computes listening statistics: play time, top tracks/artists/albums/podcasts,
skips, platforms, and per-year breakdowns. Everything runs locally against the
export files; nothing is uploaded anywhere.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.spotify-history-tools.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&dataDir, "data", "d", ".", "Directory containing the exported Streaming_History*.json files")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	rootCmd.PersistentFlags().IntVarP(
		&topN, "top-n", "n", 5, "Number of entries in each top list")
	viper.BindPFlag("top-n", rootCmd.PersistentFlags().Lookup("top-n"))

	rootCmd.PersistentFlags().StringVar(
		&sendgridApiKey, "sendgrid_api_key", "", "SendGrid API key, for emailing summaries")
	viper.BindPFlag("sendgrid_api_key", rootCmd.PersistentFlags().Lookup("sendgrid_api_key"))

	rootCmd.PersistentFlags().StringVar(
		&fromAddress, "from", "", "From email address, for emailing summaries")
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".spotify-history-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".spotify-history-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// loadSession ingests the export directory twice - once for tracks, once for
// podcast episodes - and holds both so commands can aggregate any scope
// without re-reading files.
func loadSession() (*stats.Session, error) {
	dir := viper.GetString("data")
	n := viper.GetInt("top-n")
	if n <= 0 {
		n = 5
	}

	loader := history.NewLoader()
	tracks, err := loader.LoadDir(dir, history.KindTrack)
	if err != nil {
		return nil, fmt.Errorf("loading track history: %w", err)
	}
	episodes, err := loader.LoadDir(dir, history.KindEpisode)
	if err != nil {
		return nil, fmt.Errorf("loading episode history: %w", err)
	}

	return stats.NewSession(tracks, episodes, n), nil
}

// scopeName renders a scope for headings: 0 is all-time.
func scopeName(year int) string {
	if year == 0 {
		return "All Time"
	}
	return fmt.Sprintf("%d", year)
}

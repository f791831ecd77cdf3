package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/horiagug/yt-transcript-downloader/internal/channel"
	"github.com/horiagug/yt-transcript-downloader/internal/cli"
	"github.com/horiagug/yt-transcript-downloader/internal/config"
	"github.com/horiagug/yt-transcript-downloader/internal/downloader"
	"github.com/horiagug/yt-transcript-downloader/internal/repository"
	"github.com/horiagug/yt-transcript-downloader/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "yt_transcripts",
	Short: "Interactive downloader for YouTube video and channel transcripts",
	Long: `Downloads closed-caption transcripts for single videos, files of
video URLs, or entire channels, and writes them as JSON, TXT or SRT.

Channel workflows need a YouTube Data API key in YOUTUBE_API_KEY.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cfg.InitLogger()

		if cfg.APIKey == "" {
			logrus.Warn("YOUTUBE_API_KEY is not set; channel downloads will fail with an authorization error")
		}

		api, err := channel.NewDataAPI(cmd.Context(), cfg.APIKey)
		if err != nil {
			return err
		}

		transcripts := service.NewTranscriptService(repository.NewHTMLFetcher())

		d := downloader.New(
			transcripts,
			channel.NewResolver(api),
			channel.NewEnumerator(api),
			downloader.WithLanguages(cfg.Languages),
			downloader.WithBaseDir(cfg.OutputDir),
			downloader.WithOutput(cmd.OutOrStdout()),
		)

		menu := cli.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), d)
		return menu.Run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

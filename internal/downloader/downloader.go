package downloader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/horiagug/yt-transcript-downloader/internal/channel"
	"github.com/horiagug/yt-transcript-downloader/internal/service"
	yterrors "github.com/horiagug/yt-transcript-downloader/pkg/errors"
	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_formatters"
)

// Fixed subdirectories shared across runs; same-named video files are
// overwritten without warning.
const (
	singleVideosDir   = "single_videos"
	multipleVideosDir = "multiple_videos"
)

// Summary counts one workflow run. NoCaptions is tracked apart from
// Failed so the tally distinguishes "nothing to download" from errors.
type Summary struct {
	Successful int
	Failed     int
	NoCaptions int
	Total      int
}

// Downloader drives the three transcript download workflows.
type Downloader struct {
	transcripts service.TranscriptService
	resolver    *channel.Resolver
	enumerator  *channel.Enumerator
	languages   []string
	baseDir     string
	out         io.Writer
}

type Option func(*Downloader)

func WithLanguages(languages []string) Option {
	return func(d *Downloader) {
		d.languages = languages
	}
}

func WithBaseDir(dir string) Option {
	return func(d *Downloader) {
		d.baseDir = dir
	}
}

func WithOutput(w io.Writer) Option {
	return func(d *Downloader) {
		d.out = w
	}
}

func New(transcripts service.TranscriptService, resolver *channel.Resolver, enumerator *channel.Enumerator, options ...Option) *Downloader {
	d := &Downloader{
		transcripts: transcripts,
		resolver:    resolver,
		enumerator:  enumerator,
		languages:   []string{"en"},
		baseDir:     "transcripts",
		out:         os.Stdout,
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// DownloadChannel resolves the channel, enumerates its videos and
// downloads every transcript into a directory named after the channel ID.
func (d *Downloader) DownloadChannel(ctx context.Context, rawURL string, format yt_transcript_formatters.Format) (Summary, error) {
	channelID, err := d.resolver.Resolve(ctx, rawURL)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to resolve channel %q: %w", rawURL, err)
	}

	fmt.Fprintf(d.out, "Resolved channel ID: %s\n", channelID)

	videoIDs := d.enumerator.ListVideos(ctx, channelID)
	if len(videoIDs) == 0 {
		fmt.Fprintln(d.out, "No videos found for this channel.")
		return Summary{}, nil
	}

	dir := filepath.Join(d.baseDir, channelID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintf(d.out, "Found %d videos.\n", len(videoIDs))
	return d.downloadAll(videoIDs, dir, format), nil
}

// DownloadSingle downloads one video's transcript into the shared
// single_videos directory.
func (d *Downloader) DownloadSingle(ctx context.Context, rawURL string, format yt_transcript_formatters.Format) (Summary, error) {
	videoID := channel.ExtractVideoID(rawURL)

	dir := filepath.Join(d.baseDir, singleVideosDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	return d.downloadAll([]string{videoID}, dir, format), nil
}

// DownloadFromFile reads video URLs line by line, skipping blank lines,
// and downloads each transcript into the shared multiple_videos
// directory. A failing line never aborts the rest.
func (d *Downloader) DownloadFromFile(ctx context.Context, path string, format yt_transcript_formatters.Format) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open URL file: %w", err)
	}
	defer f.Close()

	var videoIDs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		videoIDs = append(videoIDs, channel.ExtractVideoID(line))
	}
	if err := scanner.Err(); err != nil {
		return Summary{}, fmt.Errorf("failed to read URL file: %w", err)
	}

	if len(videoIDs) == 0 {
		fmt.Fprintln(d.out, "No URLs found in file.")
		return Summary{}, nil
	}

	dir := filepath.Join(d.baseDir, multipleVideosDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	return d.downloadAll(videoIDs, dir, format), nil
}

// downloadAll processes videos strictly in order, one at a time. Every
// per-item failure is counted and narrated, never fatal.
func (d *Downloader) downloadAll(videoIDs []string, dir string, format yt_transcript_formatters.Format) Summary {
	formatter := yt_transcript_formatters.New(format)

	var summary Summary
	for i, videoID := range videoIDs {
		summary.Total++
		fmt.Fprintf(d.out, "[%d/%d] %s\n", i+1, len(videoIDs), videoID)

		path, err := d.downloadOne(videoID, dir, formatter)
		if err != nil {
			if errors.Is(err, yterrors.ErrNoTranscript) {
				summary.NoCaptions++
				fmt.Fprintf(d.out, "  no captions available\n")
			} else {
				summary.Failed++
				fmt.Fprintf(d.out, "  failed: %v\n", err)
			}
			continue
		}

		summary.Successful++
		fmt.Fprintf(d.out, "  saved %s\n", path)
	}

	return summary
}

func (d *Downloader) downloadOne(videoID string, dir string, formatter yt_transcript_formatters.Formatter) (string, error) {
	transcript, err := d.transcripts.GetTranscript(videoID, d.languages, false)
	if err != nil {
		return "", err
	}

	path, err := yt_transcript_formatters.Export(formatter, transcript.Lines, dir, videoID)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"video_id": videoID,
		"title":    transcript.VideoTitle,
		"language": transcript.LanguageCode,
		"lines":    len(transcript.Lines),
		"path":     path,
	}).Debug("transcript saved")

	return path, nil
}

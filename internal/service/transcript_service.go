package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/horiagug/yt-transcript-downloader/internal/repository"
	yterrors "github.com/horiagug/yt-transcript-downloader/pkg/errors"
	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_models"
)

// TranscriptService fetches the caption transcript of a single video.
type TranscriptService interface {
	GetTranscript(videoID string, languages []string, preserveFormatting bool) (*yt_transcript_models.Transcript, error)
}

type transcriptService struct {
	fetcher repository.HTMLFetcherType
}

func NewTranscriptService(fetcher repository.HTMLFetcherType) *transcriptService {
	return &transcriptService{
		fetcher: fetcher,
	}
}

// GetTranscript downloads the caption track matching the first preferred
// language, falling back to the first available track. A video without
// captions yields ErrNoTranscript.
func (t *transcriptService) GetTranscript(videoID string, languages []string, preserveFormatting bool) (*yt_transcript_models.Transcript, error) {
	transcriptData, err := t.extractTranscriptList(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to extract list of transcripts: %w", err)
	}

	track, err := pickCaptionTrack(languages, *transcriptData.Transcripts)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	lines, err := t.getTranscriptFromTrack(track, preserveFormatting)
	if err != nil {
		return nil, fmt.Errorf("error getting transcript from track: %w", err)
	}

	isGenerated := track.Kind != nil && *track.Kind == "asr"

	return &yt_transcript_models.Transcript{
		VideoID:        videoID,
		VideoTitle:     transcriptData.Title,
		Language:       track.Name.SimpleText,
		LanguageCode:   track.LanguageCode,
		IsGenerated:    isGenerated,
		IsTranslatable: track.IsTranslatable,
		Lines:          lines,
	}, nil
}

func extractTitle(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var title string
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil {
				title = n.FirstChild.Data
				return
			}
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			f(c)
		}
	}

	f(doc)
	return title
}

func (t *transcriptService) extractTranscriptList(videoID string) (*yt_transcript_models.VideoTranscriptData, error) {
	page, err := t.fetcher.FetchVideo(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video page: %w", err)
	}

	body := string(page)

	title := extractTitle(body)

	parts := strings.Split(body, `"captions":`)
	if len(parts) <= 1 {
		if strings.Contains(body, `class="g-recaptcha"`) {
			return nil, yterrors.ErrTooManyRequests
		}
		if !strings.Contains(body, `"playabilityStatus":`) {
			return nil, yterrors.ErrVideoUnavailable
		}
		return nil, yterrors.ErrNoTranscript
	}

	videoDetailsRaw := strings.Split(parts[1], `,"videoDetails`)[0]
	videoDetailsRaw = strings.ReplaceAll(videoDetailsRaw, "\n", "")

	var videoDetails yt_transcript_models.VideoDetails
	if err := json.Unmarshal([]byte(videoDetailsRaw), &videoDetails); err != nil {
		return nil, fmt.Errorf("failed to unmarshal captions JSON: %w", err)
	}

	if videoDetails.PlayerCaptionsTracklistRenderer == nil || len(videoDetails.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		return nil, yterrors.ErrNoTranscript
	}

	return &yt_transcript_models.VideoTranscriptData{
		Transcripts: videoDetails.PlayerCaptionsTracklistRenderer,
		Title:       title,
	}, nil
}

// pickCaptionTrack prefers languages in the given order and falls back to
// the first available track.
func pickCaptionTrack(languages []string, transcripts yt_transcript_models.TranscriptData) (yt_transcript_models.CaptionTrack, error) {
	if len(transcripts.CaptionTracks) == 0 {
		return yt_transcript_models.CaptionTrack{}, yterrors.ErrNoTranscript
	}

	for _, lang := range languages {
		for _, track := range transcripts.CaptionTracks {
			if track.LanguageCode == lang {
				return track, nil
			}
		}
	}

	return transcripts.CaptionTracks[0], nil
}

func (t *transcriptService) getTranscriptFromTrack(track yt_transcript_models.CaptionTrack, preserveFormatting bool) ([]yt_transcript_models.TranscriptLine, error) {
	body, err := t.fetcher.Fetch(track.BaseUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}

	parser := repository.NewTranscriptParser(preserveFormatting)

	transcript, err := parser.Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}
	return transcript, nil
}

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/horiagug/yt-transcript-downloader/internal/repository/fixtures"
	yterrors "github.com/horiagug/yt-transcript-downloader/pkg/errors"
	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_models"
)

func TestNewTranscriptService(t *testing.T) {
	fetcher := &fixtures.MockHTMLFetcher{}
	service := NewTranscriptService(fetcher)
	assert.NotNil(t, service, "Service should not be nil")
}

func TestGetTranscript(t *testing.T) {
	tests := []struct {
		name              string
		videoID           string
		languages         []string
		mockVideoHTML     string
		mockTranscriptXML string
		expectedError     error
		expectedResult    *yt_transcript_models.Transcript
	}{
		{
			name:          "Success case - single matching track",
			videoID:       "abc123",
			languages:     []string{"en"},
			mockVideoHTML: `<title>Test Video</title>{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"http://example.com/transcript","name":{"simpleText":"English"},"languageCode":"en","kind":"asr","isTranslatable":true}]}},"videoDetails":{"someKey":"some details"}}`,
			mockTranscriptXML: `<?xml version="1.0" encoding="utf-8" ?><transcript>
		              <text start="0" dur="1">Hello world</text>
		          </transcript>`,
			expectedResult: &yt_transcript_models.Transcript{
				VideoID:        "abc123",
				VideoTitle:     "Test Video",
				Language:       "English",
				LanguageCode:   "en",
				IsGenerated:    true,
				IsTranslatable: true,
				Lines: []yt_transcript_models.TranscriptLine{
					{Text: "Hello world", Start: 0, Duration: 1},
				},
			},
		},
		{
			name:          "Too many requests",
			videoID:       "abc123",
			languages:     []string{"en"},
			mockVideoHTML: `<div class="g-recaptcha"></div>`,
			expectedError: yterrors.ErrTooManyRequests,
		},
		{
			name:          "No playability status",
			videoID:       "abc123",
			languages:     []string{"en"},
			mockVideoHTML: `{"someOtherData": true}`,
			expectedError: yterrors.ErrVideoUnavailable,
		},
		{
			name:          "No transcript data",
			videoID:       "nonexistent",
			languages:     []string{"en"},
			mockVideoHTML: `{"playabilityStatus": {"status": "ERROR"}}`,
			expectedError: yterrors.ErrNoTranscript,
		},
		{
			name:          "Empty caption track list",
			videoID:       "abc123",
			languages:     []string{"en"},
			mockVideoHTML: `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[]}},"videoDetails":{}}`,
			expectedError: yterrors.ErrNoTranscript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fixtures.MockHTMLFetcher{}

			if tt.mockVideoHTML != "" {
				fetcher.On("FetchVideo", mock.AnythingOfType("string")).Return([]byte(tt.mockVideoHTML), nil)
			}

			if tt.mockTranscriptXML != "" {
				fetcher.On("Fetch", mock.AnythingOfType("string"), mock.Anything).Return([]byte(tt.mockTranscriptXML), nil)
			}

			service := NewTranscriptService(fetcher)
			result, err := service.GetTranscript(tt.videoID, tt.languages, false)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}

			fetcher.AssertExpectations(t)
		})
	}
}

func TestGetTranscriptLanguageFallback(t *testing.T) {
	fetcher := &fixtures.MockHTMLFetcher{}
	service := NewTranscriptService(fetcher)

	mockHTML := `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"http://example.com/fr","name":{"simpleText":"French"},"languageCode":"fr"},{"baseUrl":"http://example.com/de","name":{"simpleText":"German"},"languageCode":"de"}]}},"videoDetails":{}}`
	mockXML := `<?xml version="1.0" encoding="utf-8" ?><transcript>
	    <text start="0" dur="1">Bonjour</text>
	</transcript>`

	fetcher.On("FetchVideo", "abc123").Return([]byte(mockHTML), nil)
	fetcher.On("Fetch", "http://example.com/fr", mock.Anything).Return([]byte(mockXML), nil)

	result, err := service.GetTranscript("abc123", []string{"en"}, false)

	assert.NoError(t, err)
	assert.Equal(t, "fr", result.LanguageCode, "should fall back to the first available track")
	assert.Equal(t, "Bonjour", result.Lines[0].Text)
	fetcher.AssertExpectations(t)
}

func TestGetTranscriptFetchFailure(t *testing.T) {
	fetcher := &fixtures.MockHTMLFetcher{}
	service := NewTranscriptService(fetcher)

	mockHTML := `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"http://example.com/en","name":{"simpleText":"English"},"languageCode":"en"}]}},"videoDetails":{}}`

	fetcher.On("FetchVideo", "abc123").Return([]byte(mockHTML), nil)
	fetcher.On("Fetch", "http://example.com/en", mock.Anything).
		Return([]byte{}, errors.New("failed to fetch"))

	result, err := service.GetTranscript("abc123", []string{"en"}, false)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NotErrorIs(t, err, yterrors.ErrNoTranscript, "a network failure is not a missing-captions case")
	fetcher.AssertExpectations(t)
}

func TestPickCaptionTrack(t *testing.T) {
	transcripts := yt_transcript_models.TranscriptData{
		CaptionTracks: []yt_transcript_models.CaptionTrack{
			{LanguageCode: "en", Name: yt_transcript_models.LanguageName{SimpleText: "English"}},
			{LanguageCode: "es", Name: yt_transcript_models.LanguageName{SimpleText: "Spanish"}},
		},
	}

	track, err := pickCaptionTrack([]string{"es"}, transcripts)
	assert.NoError(t, err)
	assert.Equal(t, "es", track.LanguageCode)

	track, err = pickCaptionTrack(nil, transcripts)
	assert.NoError(t, err)
	assert.Equal(t, "en", track.LanguageCode, "empty preference takes the first track")

	_, err = pickCaptionTrack([]string{"en"}, yt_transcript_models.TranscriptData{})
	assert.ErrorIs(t, err, yterrors.ErrNoTranscript)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name          string
		inputHTML     string
		expectedTitle string
	}{
		{
			name:          "Valid title tag",
			inputHTML:     `<html><head><title>My Video Title</title></head><body>Hello</body></html>`,
			expectedTitle: "My Video Title",
		},
		{
			name:          "Title tag with HTML entities",
			inputHTML:     `<html><head><title>My Video &amp; Title</title></head><body></body></html>`,
			expectedTitle: "My Video & Title",
		},
		{
			name:          "No title tag",
			inputHTML:     `<html><head></head><body>No title here</body></html>`,
			expectedTitle: "",
		},
		{
			name:          "Multiple title tags (first should be picked)",
			inputHTML:     `<html><head><title>First Title</title><title>Second Title</title></head><body></body></html>`,
			expectedTitle: "First Title",
		},
		{
			name:          "Escaped characters in title",
			inputHTML:     `<html><body><title>What&#39;s new in Go</title></body></html>`,
			expectedTitle: "What's new in Go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractTitle(tt.inputHTML)
			assert.Equal(t, tt.expectedTitle, result)
		})
	}
}

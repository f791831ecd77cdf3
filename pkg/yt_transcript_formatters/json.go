package yt_transcript_formatters

import (
	"bytes"
	"encoding/json"

	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_models"
)

// JSONFormatterOption is specifically for JSON formatter options
type JSONFormatterOption func(*JSONFormatter)

type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(options ...JSONFormatterOption) *JSONFormatter {
	f := &JSONFormatter{
		PrettyPrint: true,
	}

	for _, opt := range options {
		opt(f)
	}
	return f
}

// WithPrettyPrint returns a function that sets the PrettyPrint option
func WithPrettyPrint(pretty bool) JSONFormatterOption {
	return func(f *JSONFormatter) {
		f.PrettyPrint = pretty
	}
}

// Format dumps the line slice as-is. HTML escaping is disabled so
// non-ASCII text and punctuation survive literally.
func (f *JSONFormatter) Format(lines []yt_transcript_models.TranscriptLine) (string, error) {
	if lines == nil {
		lines = []yt_transcript_models.TranscriptLine{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if f.PrettyPrint {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(lines); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (f *JSONFormatter) Extension() string {
	return ".json"
}

package yt_transcript_formatters

import (
	"strings"

	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_models"
)

type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format writes one caption text per line, in order.
func (t *TextFormatter) Format(lines []yt_transcript_models.TranscriptLine) (string, error) {
	var text strings.Builder

	for _, line := range lines {
		text.WriteString(line.Text)
		text.WriteString("\n")
	}

	return text.String(), nil
}

func (t *TextFormatter) Extension() string {
	return ".txt"
}

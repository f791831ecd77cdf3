package yt_transcript_formatters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_models"
)

// Format is the closed set of output layouts.
type Format int

const (
	FormatJSON Format = iota + 1
	FormatText
	FormatSRT
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "txt"
	case FormatSRT:
		return "srt"
	}
	return "unknown"
}

// Formatter serializes transcript lines into one output layout.
type Formatter interface {
	Format(lines []yt_transcript_models.TranscriptLine) (string, error)
	Extension() string
}

// New returns the formatter for the given format, defaulting to JSON.
func New(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatSRT:
		return NewSRTFormatter()
	default:
		return NewJSONFormatter()
	}
}

// Export serializes lines with f and writes them to <dir>/<name><ext>,
// overwriting any existing file. Returns the written path.
func Export(f Formatter, lines []yt_transcript_models.TranscriptLine, dir string, name string) (string, error) {
	out, err := f.Format(lines)
	if err != nil {
		return "", fmt.Errorf("failed to format transcript: %w", err)
	}

	path := filepath.Join(dir, name+f.Extension())
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript file: %w", err)
	}

	return path, nil
}

package yt_transcript_formatters

import (
	"fmt"
	"math"
	"strings"

	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_models"
)

type SRTFormatter struct{}

func NewSRTFormatter() *SRTFormatter {
	return &SRTFormatter{}
}

// Format renders numbered SRT cues. The cue end is start plus duration;
// a missing duration leaves the cue zero-length.
func (s *SRTFormatter) Format(lines []yt_transcript_models.TranscriptLine) (string, error) {
	var b strings.Builder

	for i, line := range lines {
		end := line.Start + line.Duration
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1, srtTimestamp(line.Start), srtTimestamp(end), line.Text)
	}

	return b.String(), nil
}

func (s *SRTFormatter) Extension() string {
	return ".srt"
}

// srtTimestamp renders seconds as HH:MM:SS,mmm.
func srtTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	ms := int64(math.Round(seconds * 1000))
	h := ms / 3600000
	ms -= h * 3600000
	m := ms / 60000
	ms -= m * 60000
	sec := ms / 1000
	ms -= sec * 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, sec, ms)
}

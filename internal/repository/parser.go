package repository

import (
	"encoding/xml"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_models"
)

// Formatting tags to preserve
var formattingTags = []string{
	"strong", "em", "b", "i", "mark", "small", "del", "ins", "sub", "sup",
}

var allTagsRegex = regexp.MustCompile(`(?i)<[^>]*>`)

// allowedTagRegex matches open/close forms of the formatting tags.
var allowedTagRegex = regexp.MustCompile(`(?i)^</?(?:` + strings.Join(formattingTags, "|") + `)\b[^>]*>$`)

// transcriptParser turns caption XML into transcript lines.
type transcriptParser struct {
	preserveFormatting bool
}

func NewTranscriptParser(preserveFormatting bool) *transcriptParser {
	return &transcriptParser{preserveFormatting: preserveFormatting}
}

// cleanHTML strips HTML tags from caption text. The XML decoder has
// already turned entity-escaped tags into literal ones, so preserving
// formatting means stripping only tags outside the allowed list.
func cleanHTML(text string, preserveFormatting bool) string {
	if !preserveFormatting {
		return allTagsRegex.ReplaceAllString(text, "")
	}

	return allTagsRegex.ReplaceAllStringFunc(text, func(tag string) string {
		if allowedTagRegex.MatchString(tag) {
			return tag
		}
		return ""
	})
}

// Parse extracts transcript text, start time, and duration from XML
func (p *transcriptParser) Parse(plainData string) ([]yt_transcript_models.TranscriptLine, error) {
	type XMLTranscript struct {
		XMLName xml.Name `xml:"transcript"`
		Texts   []struct {
			Text     string `xml:",chardata"`
			Start    string `xml:"start,attr"`
			Duration string `xml:"dur,attr"`
		} `xml:"text"`
	}

	var parsedXML XMLTranscript
	if err := xml.Unmarshal([]byte(plainData), &parsedXML); err != nil {
		return nil, err
	}

	var results []yt_transcript_models.TranscriptLine
	for _, entry := range parsedXML.Texts {
		text := cleanHTML(entry.Text, p.preserveFormatting)
		text = html.UnescapeString(text)

		start, err := strconv.ParseFloat(entry.Start, 64)
		if err != nil {
			start = 0.0
		}

		duration, err := strconv.ParseFloat(entry.Duration, 64)
		if err != nil {
			duration = 0.0
		}

		results = append(results, yt_transcript_models.TranscriptLine{
			Text:     text,
			Start:    start,
			Duration: duration,
		})
	}
	return results, nil
}

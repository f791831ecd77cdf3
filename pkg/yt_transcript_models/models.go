package yt_transcript_models

// TranscriptLine is one timed caption unit, ordered by Start ascending.
type TranscriptLine struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is the full caption track of one video.
type Transcript struct {
	VideoID        string
	VideoTitle     string
	Language       string
	LanguageCode   string
	IsGenerated    bool
	IsTranslatable bool
	Lines          []TranscriptLine
}

type LanguageName struct {
	SimpleText string `json:"simpleText"`
}

// CaptionTrack is one entry of the watch page's caption track list.
type CaptionTrack struct {
	BaseUrl        string       `json:"baseUrl"`
	Name           LanguageName `json:"name"`
	LanguageCode   string       `json:"languageCode"`
	Kind           *string      `json:"kind,omitempty"`
	IsTranslatable bool         `json:"isTranslatable"`
}

type TranscriptData struct {
	CaptionTracks []CaptionTrack `json:"captionTracks"`
}

// VideoDetails mirrors the fragment of the player response we care about.
type VideoDetails struct {
	PlayerCaptionsTracklistRenderer *TranscriptData `json:"playerCaptionsTracklistRenderer"`
}

// VideoTranscriptData pairs the track list with the page title.
type VideoTranscriptData struct {
	Title       string
	Transcripts *TranscriptData
}

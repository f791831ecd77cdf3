package channel

import "regexp"

// PatternKind tells the resolver which lookup strategy applies to an
// extracted identifier.
type PatternKind int

const (
	KindNone PatternKind = iota
	KindChannelID
	KindCustomPath
	KindHandle
	KindUsername
)

var channelPatterns = []struct {
	kind PatternKind
	re   *regexp.Regexp
}{
	{KindChannelID, regexp.MustCompile(`youtube\.com/channel/([a-zA-Z0-9_-]+)`)},
	{KindCustomPath, regexp.MustCompile(`youtube\.com/c/([a-zA-Z0-9_.-]+)`)},
	{KindHandle, regexp.MustCompile(`youtube\.com/@([a-zA-Z0-9_.-]+)`)},
	{KindUsername, regexp.MustCompile(`youtube\.com/user/([a-zA-Z0-9_.-]+)`)},
}

var videoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
}

// ExtractChannelID pulls the channel identifier fragment out of a channel
// URL. First matching pattern wins. An unrecognized shape passes the input
// through unchanged with KindNone; this is not an error, it lets users
// paste bare channel IDs.
func ExtractChannelID(raw string) (string, PatternKind) {
	for _, p := range channelPatterns {
		if match := p.re.FindStringSubmatch(raw); match != nil {
			return match[1], p.kind
		}
	}
	return raw, KindNone
}

// ExtractVideoID pulls the video identifier out of a video URL, passing
// unrecognized shapes through unchanged.
func ExtractVideoID(raw string) string {
	for _, re := range videoPatterns {
		if match := re.FindStringSubmatch(raw); match != nil {
			return match[1]
		}
	}
	return raw
}

package errors

type TranscriptError string

func (e TranscriptError) Error() string {
	return string(e)
}

const (
	// ErrNoTranscript marks videos that simply have no captions. Batch
	// loops tally it separately from other failures.
	ErrNoTranscript = TranscriptError("no transcript found")

	ErrInvalidVideoID   = TranscriptError("invalid video ID")
	ErrTooManyRequests  = TranscriptError("too many requests")
	ErrVideoUnavailable = TranscriptError("video unavailable")

	// ErrChannelNotResolved means every resolution strategy came up
	// empty; the channel workflow aborts with a message, not a crash.
	ErrChannelNotResolved = TranscriptError("channel could not be resolved")
)

package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractChannelID(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedID   string
		expectedKind PatternKind
	}{
		{
			name:         "Direct channel URL",
			input:        "https://www.youtube.com/channel/UCBR8-60-B28hp2BmDPdntcQ",
			expectedID:   "UCBR8-60-B28hp2BmDPdntcQ",
			expectedKind: KindChannelID,
		},
		{
			name:         "Legacy custom URL",
			input:        "https://www.youtube.com/c/SomeCreator",
			expectedID:   "SomeCreator",
			expectedKind: KindCustomPath,
		},
		{
			name:         "Handle URL",
			input:        "https://www.youtube.com/@some.handle",
			expectedID:   "some.handle",
			expectedKind: KindHandle,
		},
		{
			name:         "Legacy username URL",
			input:        "https://www.youtube.com/user/oldschool",
			expectedID:   "oldschool",
			expectedKind: KindUsername,
		},
		{
			name:         "Unrecognized shape passes through",
			input:        "UCBR8-60-B28hp2BmDPdntcQ",
			expectedID:   "UCBR8-60-B28hp2BmDPdntcQ",
			expectedKind: KindNone,
		},
		{
			name:         "First matching pattern wins",
			input:        "https://www.youtube.com/channel/UCabc/c/other",
			expectedID:   "UCabc",
			expectedKind: KindChannelID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, kind := ExtractChannelID(tt.input)
			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, tt.expectedKind, kind)
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Watch URL",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Watch URL with extra params",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Short URL",
			input:    "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Legacy /v/ URL",
			input:    "https://www.youtube.com/v/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Embed URL",
			input:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Bare ID passes through",
			input:    "dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Unrecognized URL passes through",
			input:    "https://example.com/video",
			expected: "https://example.com/video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractVideoID(tt.input))
		})
	}
}

func TestExtractVideoIDIdempotent(t *testing.T) {
	once := ExtractVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	assert.Equal(t, once, ExtractVideoID(once))
}

package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config is loaded once at process start and never mutated.
type Config struct {
	// APIKey authorizes channel resolution and enumeration calls. An
	// empty key leaves those calls failing with an authorization error
	// at call time; single-video downloads still work.
	APIKey string

	// Languages is the caption language preference order.
	Languages []string

	// OutputDir is the root under which transcripts are written.
	OutputDir string

	LogLevel string
}

func Load() Config {
	return Config{
		APIKey:    os.Getenv("YOUTUBE_API_KEY"),
		Languages: splitList(getenv("YT_TRANSCRIPT_LANGUAGES", "en")),
		OutputDir: getenv("YT_TRANSCRIPT_DIR", "transcripts"),
		LogLevel:  getenv("YT_TRANSCRIPT_LOG_LEVEL", "warn"),
	}
}

// InitLogger configures the process-wide logrus logger. Narration for the
// interactive menu goes to stdout separately; this logger carries
// diagnostics only.
func (c Config) InitLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
}

func getenv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

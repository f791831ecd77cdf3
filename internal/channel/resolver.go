package channel

import (
	"context"
	"regexp"

	"github.com/sirupsen/logrus"

	yterrors "github.com/horiagug/yt-transcript-downloader/pkg/errors"
)

// canonicalChannelID matches YouTube's UC-prefixed channel key.
var canonicalChannelID = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)

// Resolver turns channel URLs, handles and usernames into canonical
// channel IDs via an ordered strategy chain with short-circuit on the
// first non-empty result.
type Resolver struct {
	api LookupAPI
}

func NewResolver(api LookupAPI) *Resolver {
	return &Resolver{api: api}
}

// Resolve determines the canonical channel ID for a raw channel URL or
// identifier. It returns ErrChannelNotResolved when every strategy has
// been exhausted.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, error) {
	candidate, kind := ExtractChannelID(raw)

	if canonicalChannelID.MatchString(candidate) {
		return candidate, nil
	}

	switch kind {
	case KindCustomPath, KindHandle:
		if id, ok := r.searchFirstChannel(ctx, candidate); ok {
			return id, nil
		}
	case KindUsername:
		if id, ok := r.lookupUsername(ctx, candidate); ok {
			return id, nil
		}
	}

	// Last resort: resolve the whole input as a free-text channel search.
	if id, ok := r.searchFirstChannel(ctx, raw); ok {
		return id, nil
	}

	return "", yterrors.ErrChannelNotResolved
}

func (r *Resolver) searchFirstChannel(ctx context.Context, query string) (string, bool) {
	resp, err := r.api.SearchChannels(ctx, query)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Debug("channel search failed")
		return "", false
	}

	for _, item := range resp.Items {
		if item.Id != nil && item.Id.ChannelId != "" {
			return item.Id.ChannelId, true
		}
	}
	return "", false
}

func (r *Resolver) lookupUsername(ctx context.Context, username string) (string, bool) {
	resp, err := r.api.ChannelForUsername(ctx, username)
	if err != nil {
		logrus.WithError(err).WithField("username", username).Debug("username lookup failed")
		return "", false
	}

	for _, item := range resp.Items {
		if item.Id != "" {
			return item.Id, true
		}
	}
	return "", false
}

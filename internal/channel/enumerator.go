package channel

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Enumerator lists every video ID belonging to a channel through
// paginated search calls.
type Enumerator struct {
	api LookupAPI
}

func NewEnumerator(api LookupAPI) *Enumerator {
	return &Enumerator{api: api}
}

// ListVideos accumulates video IDs page by page until no continuation
// token remains. A failure mid-pagination stops the walk and returns
// whatever was collected so far; an empty result means the channel has
// no videos or is inaccessible, not that the call failed.
func (e *Enumerator) ListVideos(ctx context.Context, channelID string) []string {
	var ids []string
	pageToken := ""

	for {
		resp, err := e.api.SearchVideos(ctx, channelID, pageToken)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"channel_id": channelID,
				"collected":  len(ids),
			}).Warn("video listing stopped early")
			return ids
		}

		for _, item := range resp.Items {
			// Malformed items without a nested video ID are skipped.
			if item == nil || item.Id == nil || item.Id.VideoId == "" {
				continue
			}
			ids = append(ids, item.Id.VideoId)
		}

		if resp.NextPageToken == "" {
			return ids
		}
		pageToken = resp.NextPageToken
	}
}

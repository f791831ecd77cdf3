package channel

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// maxPageSize is the Data API search page maximum.
const maxPageSize = 50

// LookupAPI is the slice of the YouTube Data API the resolver and
// enumerator need.
type LookupAPI interface {
	SearchChannels(ctx context.Context, query string) (*youtube.SearchListResponse, error)
	ChannelForUsername(ctx context.Context, username string) (*youtube.ChannelListResponse, error)
	SearchVideos(ctx context.Context, channelID string, pageToken string) (*youtube.SearchListResponse, error)
}

// DataAPI implements LookupAPI against the real service.
type DataAPI struct {
	svc *youtube.Service
}

// NewDataAPI builds a Data API client. An empty key is accepted; calls
// will fail with an authorization error at call time.
func NewDataAPI(ctx context.Context, apiKey string) (*DataAPI, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &DataAPI{svc: svc}, nil
}

func (a *DataAPI) SearchChannels(ctx context.Context, query string) (*youtube.SearchListResponse, error) {
	return a.svc.Search.List([]string{"id"}).
		Q(query).
		Type("channel").
		MaxResults(5).
		Context(ctx).
		Do()
}

func (a *DataAPI) ChannelForUsername(ctx context.Context, username string) (*youtube.ChannelListResponse, error) {
	return a.svc.Channels.List([]string{"id"}).
		ForUsername(username).
		Context(ctx).
		Do()
}

func (a *DataAPI) SearchVideos(ctx context.Context, channelID string, pageToken string) (*youtube.SearchListResponse, error) {
	return a.svc.Search.List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(maxPageSize).
		PageToken(pageToken).
		Context(ctx).
		Do()
}

package fixtures

import (
	"context"

	"github.com/stretchr/testify/mock"
	"google.golang.org/api/youtube/v3"
)

// MockLookupAPI implements channel.LookupAPI for testing
type MockLookupAPI struct {
	mock.Mock
}

func (m *MockLookupAPI) SearchChannels(ctx context.Context, query string) (*youtube.SearchListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*youtube.SearchListResponse), args.Error(1)
}

func (m *MockLookupAPI) ChannelForUsername(ctx context.Context, username string) (*youtube.ChannelListResponse, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*youtube.ChannelListResponse), args.Error(1)
}

func (m *MockLookupAPI) SearchVideos(ctx context.Context, channelID string, pageToken string) (*youtube.SearchListResponse, error) {
	args := m.Called(ctx, channelID, pageToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*youtube.SearchListResponse), args.Error(1)
}

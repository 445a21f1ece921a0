package provider

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockMediaProvider struct {
	mock.Mock
}

func NewMockMediaProvider() *MockMediaProvider {
	return &MockMediaProvider{}
}

func (m *MockMediaProvider) CreateUploadTarget(ctx context.Context, passthrough string, corsOrigin string, timeout time.Duration) (*domain.UploadTarget, error) {
	args := m.Called(ctx, passthrough, corsOrigin, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadTarget), args.Error(1)
}

func (m *MockMediaProvider) GetAsset(ctx context.Context, externalID string) (*domain.ProviderAsset, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderAsset), args.Error(1)
}

func (m *MockMediaProvider) DeleteAsset(ctx context.Context, externalID string) error {
	args := m.Called(ctx, externalID)
	return args.Error(0)
}

func (m *MockMediaProvider) AssetMetrics(ctx context.Context, externalID string) (map[string]any, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockMediaProvider) PlaybackURL(playbackID string) string {
	args := m.Called(playbackID)
	return args.String(0)
}

func (m *MockMediaProvider) ThumbnailURL(playbackID string, atSeconds float64) string {
	args := m.Called(playbackID, atSeconds)
	return args.String(0)
}

func (m *MockMediaProvider) SignedPlaybackURL(playbackID string, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(playbackID, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockMediaProvider) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

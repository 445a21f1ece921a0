package asset

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAssetService is a mock implementation of AssetService
type MockAssetService struct {
	mock.Mock
}

// NewMockAssetService creates a new MockAssetService
func NewMockAssetService() *MockAssetService {
	return &MockAssetService{}
}

func (m *MockAssetService) Initiate(ctx context.Context, req domain.UploadRequest) (*domain.UploadGrant, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadGrant), args.Error(1)
}

func (m *MockAssetService) GetStatus(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetStatusView, error) {
	args := m.Called(ctx, assetID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetStatusView), args.Error(1)
}

func (m *MockAssetService) GetMetadata(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetMetadata, error) {
	args := m.Called(ctx, assetID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetMetadata), args.Error(1)
}

func (m *MockAssetService) SignedPlaybackURL(ctx context.Context, assetID uuid.UUID, ownerID string, ttl time.Duration) (*domain.SignedPlayback, error) {
	args := m.Called(ctx, assetID, ownerID, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SignedPlayback), args.Error(1)
}

func (m *MockAssetService) Delete(ctx context.Context, assetID uuid.UUID, ownerID string) error {
	args := m.Called(ctx, assetID, ownerID)
	return args.Error(0)
}

func (m *MockAssetService) Retry(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetStatusView, error) {
	args := m.Called(ctx, assetID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetStatusView), args.Error(1)
}

func (m *MockAssetService) BeginProcessing(ctx context.Context, assetID uuid.UUID, externalID string) error {
	args := m.Called(ctx, assetID, externalID)
	return args.Error(0)
}

func (m *MockAssetService) CompleteFromProvider(ctx context.Context, assetID uuid.UUID, providerAsset *domain.ProviderAsset) error {
	args := m.Called(ctx, assetID, providerAsset)
	return args.Error(0)
}

func (m *MockAssetService) MarkFailed(ctx context.Context, assetID uuid.UUID, errText string, cancelled bool) error {
	args := m.Called(ctx, assetID, errText, cancelled)
	return args.Error(0)
}

package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/provider"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/repository"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/asset"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReconcileService_RetryStuck_AppliesProviderState(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	mockAssets := asset.NewMockAssetService()
	service := newReconcileService(mockUow, mockProvider, mockAssets)

	stuck := domain.MediaAsset{
		ID:         uuid.New(),
		ExternalID: "mux-1",
		Status:     domain.AssetStatusProcessing,
	}
	providerAsset := &domain.ProviderAsset{ID: "mux-1", Status: domain.ProviderAssetReady}

	mockUow.GetAssetRepoMock().On("FindStuck", ctx, now.Add(-30*time.Minute)).Return([]domain.MediaAsset{stuck}, nil)
	mockProvider.On("GetAsset", ctx, "mux-1").Return(providerAsset, nil)
	mockAssets.On("CompleteFromProvider", ctx, stuck.ID, providerAsset).Return(nil)

	// Act
	err := service.RetryStuck(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockProvider.AssertExpectations(t)
	mockAssets.AssertExpectations(t)
}

func TestReconcileService_RetryStuck_NoExternalID_Skipped(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	mockAssets := asset.NewMockAssetService()
	service := newReconcileService(mockUow, mockProvider, mockAssets)

	stuck := domain.MediaAsset{ID: uuid.New(), Status: domain.AssetStatusUploading}
	mockUow.GetAssetRepoMock().On("FindStuck", ctx, mock.Anything).Return([]domain.MediaAsset{stuck}, nil)

	// Act
	err := service.RetryStuck(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockProvider.AssertNotCalled(t, "GetAsset", mock.Anything, mock.Anything)
}

func TestReconcileService_RetryStuck_PollFailure_ContinuesWithNext(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	mockAssets := asset.NewMockAssetService()
	service := newReconcileService(mockUow, mockProvider, mockAssets)

	bad := domain.MediaAsset{ID: uuid.New(), ExternalID: "mux-bad", Status: domain.AssetStatusProcessing}
	good := domain.MediaAsset{ID: uuid.New(), ExternalID: "mux-good", Status: domain.AssetStatusProcessing}
	providerAsset := &domain.ProviderAsset{ID: "mux-good", Status: domain.ProviderAssetReady}

	mockUow.GetAssetRepoMock().On("FindStuck", ctx, mock.Anything).Return([]domain.MediaAsset{bad, good}, nil)
	mockProvider.On("GetAsset", ctx, "mux-bad").Return(nil, errors.New("timeout"))
	mockProvider.On("GetAsset", ctx, "mux-good").Return(providerAsset, nil)
	mockAssets.On("CompleteFromProvider", ctx, good.ID, providerAsset).Return(nil)

	// Act
	err := service.RetryStuck(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockAssets.AssertExpectations(t)
}

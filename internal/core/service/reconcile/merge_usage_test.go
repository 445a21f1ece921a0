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

func TestReconcileService_MergeUsage_MergesMetrics(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	service := newReconcileService(mockUow, mockProvider, asset.NewMockAssetService())

	completed := domain.MediaAsset{
		ID:         uuid.New(),
		ExternalID: "mux-1",
		Status:     domain.AssetStatusCompleted,
	}
	metrics := map[string]any{"views": int64(12)}

	assetRepo := mockUow.GetAssetRepoMock()
	assetRepo.On("FindCompletedSince", ctx, now.Add(-24*time.Hour)).Return([]domain.MediaAsset{completed}, nil)
	mockProvider.On("AssetMetrics", ctx, "mux-1").Return(metrics, nil)
	assetRepo.On("MergeExtra", ctx, completed.ID, metrics).Return(nil)

	// Act
	err := service.MergeUsage(ctx, now)

	// Assert
	assert.NoError(t, err)
	assetRepo.AssertExpectations(t)
	mockProvider.AssertExpectations(t)
}

func TestReconcileService_MergeUsage_MetricsFailure_Skipped(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	service := newReconcileService(mockUow, mockProvider, asset.NewMockAssetService())

	first := domain.MediaAsset{ID: uuid.New(), ExternalID: "mux-1", Status: domain.AssetStatusCompleted}
	second := domain.MediaAsset{ID: uuid.New(), ExternalID: "mux-2", Status: domain.AssetStatusCompleted}
	metrics := map[string]any{"views": int64(3)}

	assetRepo := mockUow.GetAssetRepoMock()
	assetRepo.On("FindCompletedSince", ctx, mock.Anything).Return([]domain.MediaAsset{first, second}, nil)
	mockProvider.On("AssetMetrics", ctx, "mux-1").Return(nil, errors.New("rate limited"))
	mockProvider.On("AssetMetrics", ctx, "mux-2").Return(metrics, nil)
	assetRepo.On("MergeExtra", ctx, second.ID, metrics).Return(nil)

	// Act
	err := service.MergeUsage(ctx, now)

	// Assert
	assert.NoError(t, err)
	assetRepo.AssertNotCalled(t, "MergeExtra", ctx, first.ID, mock.Anything)
}

func TestReconcileService_MergeUsage_NoExternalID_Skipped(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	service := newReconcileService(mockUow, mockProvider, asset.NewMockAssetService())

	orphan := domain.MediaAsset{ID: uuid.New(), Status: domain.AssetStatusCompleted}
	mockUow.GetAssetRepoMock().On("FindCompletedSince", ctx, mock.Anything).Return([]domain.MediaAsset{orphan}, nil)

	// Act
	err := service.MergeUsage(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockProvider.AssertNotCalled(t, "AssetMetrics", mock.Anything, mock.Anything)
}

package reconcile_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/provider"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/repository"
	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/asset"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReconcileService(mockUow *repository.MockUnitOfWork, mockProvider *provider.MockMediaProvider, mockAssets *asset.MockAssetService) port.ReconcileService {
	cfg := config.ReconcileConfig{
		SessionGrace:    time.Hour,
		StuckAfter:      30 * time.Minute,
		UsageWindow:     24 * time.Hour,
		FailedRetention: 7 * 24 * time.Hour,
	}
	return reconcile.NewReconcileService(mockUow, mockProvider, mockAssets, cfg, slog.Default())
}

func TestReconcileService_ExpireSessions_NoExpired(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	service := newReconcileService(mockUow, provider.NewMockMediaProvider(), asset.NewMockAssetService())

	mockUow.GetSessionRepoMock().On("FindAllExpired", ctx, now.Add(-time.Hour)).Return([]domain.UploadSession{}, nil)

	// Act
	err := service.ExpireSessions(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockUow.GetSessionRepoMock().AssertExpectations(t)
}

func TestReconcileService_ExpireSessions_FailsUploadingAsset(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	service := newReconcileService(mockUow, provider.NewMockMediaProvider(), asset.NewMockAssetService())

	assetID := uuid.New()
	session := domain.UploadSession{
		ID:        uuid.New(),
		AssetID:   assetID,
		ExpiresAt: now.Add(-2 * time.Hour),
	}

	sessionRepo := mockUow.GetSessionRepoMock()
	assetRepo := mockUow.GetAssetRepoMock()

	sessionRepo.On("FindAllExpired", ctx, now.Add(-time.Hour)).Return([]domain.UploadSession{session}, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	assetRepo.On("Advance", ctx, assetID,
		[]domain.AssetStatus{domain.AssetStatusPending, domain.AssetStatusUploading},
		domain.AssetStatusFailed).Return(true, nil)
	sessionRepo.On("Delete", ctx, session.ID).Return(nil)

	// Act
	err := service.ExpireSessions(ctx, now)

	// Assert
	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
	assetRepo.AssertExpectations(t)
}

func TestReconcileService_ExpireSessions_CompletedAssetLeftAlone(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	service := newReconcileService(mockUow, provider.NewMockMediaProvider(), asset.NewMockAssetService())

	assetID := uuid.New()
	session := domain.UploadSession{ID: uuid.New(), AssetID: assetID}

	sessionRepo := mockUow.GetSessionRepoMock()
	assetRepo := mockUow.GetAssetRepoMock()

	sessionRepo.On("FindAllExpired", ctx, mock.Anything).Return([]domain.UploadSession{session}, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	// conditional advance misses: the asset already completed
	assetRepo.On("Advance", ctx, assetID, mock.Anything, domain.AssetStatusFailed).Return(false, nil)
	sessionRepo.On("Delete", ctx, session.ID).Return(nil)

	// Act
	err := service.ExpireSessions(ctx, now)

	// Assert: the stale session is still removed
	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
}

func TestReconcileService_ExpireSessions_PartialFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	service := newReconcileService(mockUow, provider.NewMockMediaProvider(), asset.NewMockAssetService())

	first := domain.UploadSession{ID: uuid.New(), AssetID: uuid.New()}
	second := domain.UploadSession{ID: uuid.New(), AssetID: uuid.New()}

	sessionRepo := mockUow.GetSessionRepoMock()
	assetRepo := mockUow.GetAssetRepoMock()

	sessionRepo.On("FindAllExpired", ctx, mock.Anything).Return([]domain.UploadSession{first, second}, nil)

	assetRepo.On("Advance", ctx, first.AssetID, mock.Anything, domain.AssetStatusFailed).Return(false, errors.New("db error"))
	mockUow.On("Execute", ctx, mock.Anything).Return(errors.New("transaction failed")).Once()

	assetRepo.On("Advance", ctx, second.AssetID, mock.Anything, domain.AssetStatusFailed).Return(true, nil)
	sessionRepo.On("Delete", ctx, second.ID).Return(nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil).Once()

	// Act
	err := service.ExpireSessions(ctx, now)

	// Assert: the second session is still processed
	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
	assetRepo.AssertExpectations(t)
}

func TestReconcileService_ExpireSessions_FindError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	service := newReconcileService(mockUow, provider.NewMockMediaProvider(), asset.NewMockAssetService())

	expectedErr := errors.New("db down")
	mockUow.GetSessionRepoMock().On("FindAllExpired", ctx, mock.Anything).Return([]domain.UploadSession{}, expectedErr)

	// Act
	err := service.ExpireSessions(ctx, now)

	// Assert
	assert.ErrorIs(t, err, expectedErr)
}

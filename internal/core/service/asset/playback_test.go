package asset_test

import (
	"context"
	"testing"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/eventbroker"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/provider"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/repository"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func completedAssetWithSignedPlayback(assetID uuid.UUID) *domain.MediaAsset {
	return &domain.MediaAsset{
		ID:         assetID,
		ExternalID: "mux-1",
		OwnerID:    "instructor-1",
		Status:     domain.AssetStatusCompleted,
		Extra:      map[string]any{domain.ExtraSignedPlaybackID: "pb-sig"},
	}
}

func TestAssetService_SignedPlaybackURL_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	service := newTestService(mockUow, mockProvider, eventbroker.NewMockContentPublisher())

	assetID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)
	mockUow.GetAssetRepoMock().On("FindByID", ctx, assetID).Return(completedAssetWithSignedPlayback(assetID), nil)
	mockProvider.On("SignedPlaybackURL", "pb-sig", time.Hour).
		Return("https://stream/pb-sig.m3u8?token=abc", expiresAt, nil)

	// Act
	playback, err := service.SignedPlaybackURL(ctx, assetID, "instructor-1", time.Hour)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "https://stream/pb-sig.m3u8?token=abc", playback.URL)
	assert.Equal(t, expiresAt, playback.ExpiresAt)
}

func TestAssetService_SignedPlaybackURL_DefaultTTL(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockProvider := provider.NewMockMediaProvider()
	service := newTestService(mockUow, mockProvider, eventbroker.NewMockContentPublisher())

	assetID := uuid.New()
	mockUow.GetAssetRepoMock().On("FindByID", ctx, assetID).Return(completedAssetWithSignedPlayback(assetID), nil)
	// zero ttl falls back to the configured 24h
	mockProvider.On("SignedPlaybackURL", "pb-sig", 24*time.Hour).
		Return("https://stream/pb-sig.m3u8?token=abc", time.Now().Add(24*time.Hour), nil)

	// Act
	_, err := service.SignedPlaybackURL(ctx, assetID, "instructor-1", 0)

	// Assert
	assert.NoError(t, err)
	mockProvider.AssertExpectations(t)
}

func TestAssetService_SignedPlaybackURL_NotReady(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow, provider.NewMockMediaProvider(), eventbroker.NewMockContentPublisher())

	assetID := uuid.New()
	stored := &domain.MediaAsset{
		ID:         assetID,
		ExternalID: "mux-1",
		OwnerID:    "instructor-1",
		Status:     domain.AssetStatusProcessing,
	}
	mockUow.GetAssetRepoMock().On("FindByID", ctx, assetID).Return(stored, nil)

	// Act
	_, err := service.SignedPlaybackURL(ctx, assetID, "instructor-1", time.Hour)

	// Assert
	assert.ErrorIs(t, err, domain.ErrAssetNotReady)
}

func TestAssetService_SignedPlaybackURL_NoSignedTarget(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow, provider.NewMockMediaProvider(), eventbroker.NewMockContentPublisher())

	assetID := uuid.New()
	stored := &domain.MediaAsset{
		ID:         assetID,
		ExternalID: "mux-1",
		OwnerID:    "instructor-1",
		Status:     domain.AssetStatusCompleted,
		Extra:      map[string]any{domain.ExtraPlaybackID: "pb-pub"},
	}
	mockUow.GetAssetRepoMock().On("FindByID", ctx, assetID).Return(stored, nil)

	// Act
	_, err := service.SignedPlaybackURL(ctx, assetID, "instructor-1", time.Hour)

	// Assert
	assert.ErrorIs(t, err, domain.ErrNoSignedPlayback)
}

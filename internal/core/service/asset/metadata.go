package asset

import (
	"context"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// GetMetadata returns the playable view of a completed asset. Reading
// metadata also re-publishes the lecture video reference, which is how a
// previously failed propagation eventually heals.
func (s *assetService) GetMetadata(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetMetadata, error) {

	asset, err := s.findOwned(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetStatusCompleted {
		return nil, domain.ErrAssetNotReady
	}

	s.propagateReference(ctx, asset)

	return &domain.AssetMetadata{
		AssetID:         asset.ID,
		Filename:        asset.Filename,
		ContentType:     asset.ContentType,
		SizeBytes:       asset.SizeBytes,
		Category:        asset.Category,
		DurationSeconds: int64(asset.ExtraFloat(domain.ExtraDuration)),
		PlaybackURL:     asset.ExtraString(domain.ExtraPlaybackURL),
		ThumbnailURL:    asset.ExtraString(domain.ExtraThumbnailURL),
		CreatedAt:       asset.CreatedAt,
	}, nil
}

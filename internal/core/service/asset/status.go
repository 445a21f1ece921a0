package asset

import (
	"context"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// GetStatus returns the caller-facing view of an asset. When the stored
// status looks stale and a provider asset id is already known, it runs one
// bounded repair-on-read poll through the same transition logic as the
// webhook path before answering.
func (s *assetService) GetStatus(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetStatusView, error) {

	asset, err := s.findOwned(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}

	if asset.ExternalID != "" &&
		(asset.Status == domain.AssetStatusUploading || asset.Status == domain.AssetStatusProcessing) {

		refreshed, refreshErr := s.refreshFromProvider(ctx, asset)
		if refreshErr != nil {
			// the stored view is still valid, answer with it
			s.logger.Warn("status refresh failed", "asset_id", assetID, "error", refreshErr)
		} else if refreshed {
			asset, err = s.findOwned(ctx, assetID, ownerID)
			if err != nil {
				return nil, err
			}
		}
	}

	return statusView(asset), nil
}

// refreshFromProvider polls the provider exactly once and applies any
// resulting transition. Reports whether the local record may have changed.
func (s *assetService) refreshFromProvider(ctx context.Context, asset *domain.MediaAsset) (bool, error) {
	providerAsset, err := s.provider.GetAsset(ctx, asset.ExternalID)
	if err != nil {
		return false, err
	}
	if providerAsset.Status == domain.ProviderAssetPreparing {
		return false, nil
	}
	if err := s.CompleteFromProvider(ctx, asset.ID, providerAsset); err != nil {
		return false, err
	}
	return true, nil
}

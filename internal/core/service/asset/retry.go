package asset

import (
	"context"
	"fmt"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// Retry re-drives a failed asset. When the provider still has the asset
// and it is already ready, the ready transition applies directly;
// otherwise the asset settles back into failed with an updated error.
func (s *assetService) Retry(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetStatusView, error) {

	asset, err := s.findOwned(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetStatusFailed {
		return nil, domain.ErrAssetNotRetryable
	}

	if asset.ExternalID == "" {
		// the upload never converted, there is nothing to re-drive
		mergeErr := s.uow.AssetRepo().MergeExtra(ctx, assetID, map[string]any{
			domain.ExtraError: "retry impossible: provider asset was never created",
		})
		if mergeErr != nil {
			return nil, mergeErr
		}
		return s.reloadView(ctx, assetID, ownerID)
	}

	advanced, err := s.uow.AssetRepo().Advance(
		ctx,
		assetID,
		[]domain.AssetStatus{domain.AssetStatusFailed},
		domain.AssetStatusProcessing,
	)
	if err != nil {
		return nil, err
	}
	if !advanced {
		// lost a race against another retry or a delete
		return nil, domain.ErrAssetNotRetryable
	}

	providerAsset, err := s.provider.GetAsset(ctx, asset.ExternalID)
	if err != nil {
		if failErr := s.MarkFailed(ctx, assetID, "retry failed: provider unreachable", false); failErr != nil {
			s.logger.Error("could not settle asset after failed retry", "asset_id", assetID, "error", failErr)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	if err := s.CompleteFromProvider(ctx, assetID, providerAsset); err != nil {
		return nil, err
	}

	return s.reloadView(ctx, assetID, ownerID)
}

func (s *assetService) reloadView(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetStatusView, error) {
	asset, err := s.findOwned(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}
	return statusView(asset), nil
}

package reconcile

import (
	"context"
	"time"
)

// RetryStuck re-polls the provider for assets that sat in processing
// longer than the stuck threshold and applies whatever transition the
// provider's current state implies.
func (r *reconcileService) RetryStuck(ctx context.Context, now time.Time) error {

	cutoff := now.Add(-r.cfg.StuckAfter)
	assets, err := r.uow.AssetRepo().FindStuck(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		if asset.ExternalID == "" {
			// processing without a provider asset id should not happen;
			// leave it for the session sweep or an explicit delete
			r.logger.Warn("stuck asset has no provider asset id", "asset_id", asset.ID)
			continue
		}

		providerAsset, err := r.provider.GetAsset(ctx, asset.ExternalID)
		if err != nil {
			r.logger.Error("provider poll failed for stuck asset", "asset_id", asset.ID, "external_id", asset.ExternalID, "error", err)
			continue
		}

		if err := r.assets.CompleteFromProvider(ctx, asset.ID, providerAsset); err != nil {
			r.logger.Error("could not apply provider state to stuck asset", "asset_id", asset.ID, "error", err)
			continue
		}
	}

	r.logger.Info("stuck asset sweep completed", "checked", len(assets))
	return nil
}

package reconcile

import (
	"context"
	"time"
)

// MergeUsage pulls provider-side viewing metrics for recently completed
// assets and folds them into the extra map. Non-critical: any per-asset
// failure is logged and skipped.
func (r *reconcileService) MergeUsage(ctx context.Context, now time.Time) error {

	since := now.Add(-r.cfg.UsageWindow)
	assets, err := r.uow.AssetRepo().FindCompletedSince(ctx, since)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		if asset.ExternalID == "" {
			continue
		}

		metrics, err := r.provider.AssetMetrics(ctx, asset.ExternalID)
		if err != nil {
			r.logger.Warn("could not fetch asset metrics", "asset_id", asset.ID, "external_id", asset.ExternalID, "error", err)
			continue
		}
		if len(metrics) == 0 {
			continue
		}

		if err := r.uow.AssetRepo().MergeExtra(ctx, asset.ID, metrics); err != nil {
			r.logger.Warn("could not merge asset metrics", "asset_id", asset.ID, "error", err)
		}
	}

	r.logger.Info("usage sweep completed", "assets", len(assets))
	return nil
}

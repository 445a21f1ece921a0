package reconcile

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"
)

// PurgeFailed hard-deletes failed assets older than the retention window.
// Storage hygiene only: any provider-side asset was already cleaned up by
// the explicit delete or the provider's own retention.
func (r *reconcileService) PurgeFailed(ctx context.Context, now time.Time) error {

	before := now.Add(-r.cfg.FailedRetention)
	assets, err := r.uow.AssetRepo().FindFailedBefore(ctx, before)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
			if err := uow.SessionRepo().DeleteByAssetID(ctx, asset.ID); err != nil {
				return err
			}
			return uow.AssetRepo().Delete(ctx, asset.ID)
		})
		if txErr != nil {
			r.logger.Error("failed to purge asset", "asset_id", asset.ID, "error", txErr)
		}
	}

	r.logger.Info("purge sweep completed", "purged", len(assets))
	return nil
}

package reconcile

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"
)

// ExpireSessions deletes unused upload sessions whose expiry passed more
// than the grace period ago and settles their still-uploading assets as
// failed. Skips entirely when a previous sweep is still running.
func (r *reconcileService) ExpireSessions(ctx context.Context, now time.Time) error {

	if !r.expiring.CompareAndSwap(false, true) {
		r.logger.Info("session sweep already running, skipping")
		return nil
	}
	defer r.expiring.Store(false)

	cutoff := now.Add(-r.cfg.SessionGrace)
	sessions, err := r.uow.SessionRepo().FindAllExpired(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {

			// the client never pushed bytes, so an asset still marked
			// uploading is dead; completed or processing assets are left
			// alone, only their session record goes
			_, advErr := uow.AssetRepo().Advance(
				ctx,
				session.AssetID,
				[]domain.AssetStatus{domain.AssetStatusPending, domain.AssetStatusUploading},
				domain.AssetStatusFailed,
			)
			if advErr != nil {
				return advErr
			}

			return uow.SessionRepo().Delete(ctx, session.ID)
		})
		if txErr != nil {
			r.logger.Error("failed to expire upload session", "session_id", session.ID, "asset_id", session.AssetID, "error", txErr)
		}
	}

	r.logger.Info("session sweep completed", "expired", len(sessions))
	return nil
}

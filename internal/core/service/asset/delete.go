package asset

import (
	"context"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/google/uuid"
)

// Delete removes an asset. The provider-side delete is best-effort: an
// unreachable provider must never block the caller from deleting their
// record. The local record is soft-deleted; the purge sweep handles hard
// deletion of failed leftovers.
func (s *assetService) Delete(ctx context.Context, assetID uuid.UUID, ownerID string) error {

	asset, err := s.findOwned(ctx, assetID, ownerID)
	if err != nil {
		return err
	}

	if asset.ExternalID != "" {
		if err := s.provider.DeleteAsset(ctx, asset.ExternalID); err != nil {
			s.logger.Error("provider asset delete failed, continuing", "asset_id", assetID, "external_id", asset.ExternalID, "error", err)
		}
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.SessionRepo().DeleteByAssetID(ctx, assetID); err != nil {
			return err
		}
		return uow.AssetRepo().Deactivate(ctx, assetID)
	})
	if txErr != nil {
		return txErr
	}

	if asset.LectureID != "" {
		if err := s.content.PublishVideoRemoved(ctx, asset.CourseID, asset.LectureID, assetID); err != nil {
			s.logger.Warn("video removal propagation failed", "asset_id", assetID, "lecture_id", asset.LectureID, "error", err)
		}
	}

	return nil
}

package asset

import (
	"context"
	"errors"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// BeginProcessing records that the provider converted the direct upload
// into an asset. Re-delivery is a no-op: the conditional advance only
// fires while the asset is still pending or uploading.
func (s *assetService) BeginProcessing(ctx context.Context, assetID uuid.UUID, externalID string) error {
	advanced, err := s.uow.AssetRepo().Advance(
		ctx,
		assetID,
		[]domain.AssetStatus{domain.AssetStatusPending, domain.AssetStatusUploading},
		domain.AssetStatusProcessing,
	)
	if err != nil {
		return err
	}
	if !advanced {
		s.logger.Info("asset already past uploading, ignoring asset_created", "asset_id", assetID)
		return nil
	}

	if err := s.uow.AssetRepo().SetExternalID(ctx, assetID, externalID); err != nil {
		return err
	}

	s.markSessionUsed(ctx, assetID)
	return nil
}

// CompleteFromProvider applies the provider's current view of an asset.
// It is the single transition path shared by the webhook handler, the
// repair-on-read poll and the stuck-asset sweep.
func (s *assetService) CompleteFromProvider(ctx context.Context, assetID uuid.UUID, providerAsset *domain.ProviderAsset) error {
	switch providerAsset.Status {
	case domain.ProviderAssetReady:
		return s.completeReady(ctx, assetID, providerAsset)
	case domain.ProviderAssetErrored:
		errText := providerAsset.ErrorText
		if errText == "" {
			errText = "provider reported asset errored"
		}
		return s.MarkFailed(ctx, assetID, errText, false)
	default:
		// still preparing, nothing to apply
		return nil
	}
}

func (s *assetService) completeReady(ctx context.Context, assetID uuid.UUID, providerAsset *domain.ProviderAsset) error {
	advanced, err := s.uow.AssetRepo().Advance(
		ctx,
		assetID,
		[]domain.AssetStatus{domain.AssetStatusPending, domain.AssetStatusUploading, domain.AssetStatusProcessing},
		domain.AssetStatusCompleted,
	)
	if err != nil {
		return err
	}
	if !advanced {
		// replay of an already-applied ready event, or a deleted asset
		return nil
	}

	if providerAsset.ID != "" {
		if err := s.uow.AssetRepo().SetExternalID(ctx, assetID, providerAsset.ID); err != nil {
			return err
		}
	}

	extra := map[string]any{
		domain.ExtraDuration: providerAsset.Duration,
	}
	if publicID := providerAsset.PlaybackID(domain.PlaybackPolicyPublic); publicID != "" {
		extra[domain.ExtraPlaybackID] = publicID
		extra[domain.ExtraPlaybackURL] = s.provider.PlaybackURL(publicID)
		extra[domain.ExtraThumbnailURL] = s.provider.ThumbnailURL(publicID, 0)
	}
	if signedID := providerAsset.PlaybackID(domain.PlaybackPolicySigned); signedID != "" {
		extra[domain.ExtraSignedPlaybackID] = signedID
	}
	if providerAsset.AspectRatio != "" {
		extra[domain.ExtraAspectRatio] = providerAsset.AspectRatio
	}
	if providerAsset.ResolutionTier != "" {
		extra[domain.ExtraResolutionTier] = providerAsset.ResolutionTier
	}
	if err := s.uow.AssetRepo().MergeExtra(ctx, assetID, extra); err != nil {
		return err
	}

	s.markSessionUsed(ctx, assetID)

	if asset, err := s.uow.AssetRepo().FindByID(ctx, assetID); err != nil {
		s.logger.Warn("could not reload asset for propagation", "asset_id", assetID, "error", err)
	} else {
		s.propagateReference(ctx, asset)
	}
	return nil
}

// MarkFailed settles an asset as failed or cancelled. An error event that
// arrives after completion is logged and ignored, never applied.
func (s *assetService) MarkFailed(ctx context.Context, assetID uuid.UUID, errText string, cancelled bool) error {
	to := domain.AssetStatusFailed
	if cancelled {
		to = domain.AssetStatusCancelled
	}

	advanced, err := s.uow.AssetRepo().Advance(
		ctx,
		assetID,
		[]domain.AssetStatus{domain.AssetStatusPending, domain.AssetStatusUploading, domain.AssetStatusProcessing},
		to,
	)
	if err != nil {
		return err
	}
	if !advanced {
		s.logger.Warn("ignoring error event for settled asset", "asset_id", assetID, "error_text", errText)
		return nil
	}

	if errText == "" {
		return nil
	}
	return s.uow.AssetRepo().MergeExtra(ctx, assetID, map[string]any{domain.ExtraError: errText})
}

// markSessionUsed closes the single-use upload session once the upload has
// converted. Best-effort: a missing session is fine (already swept).
func (s *assetService) markSessionUsed(ctx context.Context, assetID uuid.UUID) {
	session, err := s.uow.SessionRepo().FindByAssetID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Warn("could not load upload session", "asset_id", assetID, "error", err)
		}
		return
	}
	if session.Used {
		return
	}
	if _, err := s.uow.SessionRepo().MarkUsed(ctx, session.ID, time.Now()); err != nil {
		s.logger.Warn("could not mark upload session used", "session_id", session.ID, "error", err)
	}
}

// propagateReference pushes the playback reference to the owning lecture.
// Best-effort side channel: the asset record is the source of truth and
// the next metadata read retries the propagation.
func (s *assetService) propagateReference(ctx context.Context, asset *domain.MediaAsset) {
	if asset.LectureID == "" {
		return
	}
	ref := domain.VideoReference{
		CourseID:        asset.CourseID,
		LectureID:       asset.LectureID,
		AssetID:         asset.ID,
		ExternalID:      asset.ExternalID,
		PlaybackURL:     asset.ExtraString(domain.ExtraPlaybackURL),
		ThumbnailURL:    asset.ExtraString(domain.ExtraThumbnailURL),
		DurationSeconds: int64(asset.ExtraFloat(domain.ExtraDuration)),
	}
	if err := s.content.PublishVideoReference(ctx, ref); err != nil {
		s.logger.Warn("video reference propagation failed", "asset_id", asset.ID, "lecture_id", asset.LectureID, "error", err)
	}
}

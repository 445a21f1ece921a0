package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/google/uuid"
)

// Initiate validates the request, obtains a direct upload target from the
// provider, then persists the asset and session pair in one transaction.
// The provider call comes first so a provider failure leaves no orphaned
// records behind.
func (s *assetService) Initiate(ctx context.Context, req domain.UploadRequest) (*domain.UploadGrant, error) {

	if err := s.validateUpload(req); err != nil {
		return nil, err
	}

	assetID := uuid.New()
	passthrough, err := domain.Passthrough{
		OwnerID:   req.OwnerID,
		AssetID:   assetID.String(),
		CourseID:  req.CourseID,
		LectureID: req.LectureID,
	}.Encode()
	if err != nil {
		return nil, fmt.Errorf("could not encode passthrough: %w", err)
	}

	target, err := s.provider.CreateUploadTarget(ctx, passthrough, s.cfg.CORSOrigin, s.cfg.UploadTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	category := req.Category
	if category == "" {
		category = "video"
	}

	expiresAt := time.Now().Add(target.Timeout)
	session := domain.UploadSession{
		ID:        uuid.New(),
		AssetID:   assetID,
		UploadID:  target.ID,
		OwnerID:   req.OwnerID,
		ExpiresAt: expiresAt,
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		createErr := uow.AssetRepo().Create(ctx, domain.MediaAsset{
			ID:          assetID,
			OwnerID:     req.OwnerID,
			CourseID:    req.CourseID,
			LectureID:   req.LectureID,
			Filename:    req.Filename,
			ContentType: req.ContentType,
			SizeBytes:   req.SizeBytes,
			Category:    category,
			Status:      domain.AssetStatusUploading,
			Active:      true,
		})
		if createErr != nil {
			return createErr
		}

		return uow.SessionRepo().Create(ctx, session)
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not persist upload records: %w", txErr)
	}

	return &domain.UploadGrant{
		AssetID:   assetID,
		SessionID: session.ID,
		UploadURL: target.URL,
		ExpiresAt: expiresAt,
		Status:    domain.AssetStatusUploading,
	}, nil
}

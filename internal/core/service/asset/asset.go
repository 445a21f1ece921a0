package asset

import (
	"context"
	"fmt"
	"log/slog"
	"mime"

	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/google/uuid"
)

type assetService struct {
	uow      port.UnitOfWork
	provider port.MediaProvider
	content  port.ContentPublisher
	cfg      config.UploadConfig
	logger   *slog.Logger
}

// NewAssetService creates a new asset service
func NewAssetService(uow port.UnitOfWork, provider port.MediaProvider, content port.ContentPublisher, cfg config.UploadConfig, logger *slog.Logger) port.AssetService {
	return &assetService{
		uow:      uow,
		provider: provider,
		content:  content,
		cfg:      cfg,
		logger:   logger,
	}
}

// AllowedVideoMimeTypes is a whitelist of video MIME types accepted for
// upload. This is deterministic and does NOT rely on OS mime databases.
var AllowedVideoMimeTypes = map[string]struct{}{
	"video/mp4":        {},
	"video/webm":       {},
	"video/quicktime":  {},
	"video/x-msvideo":  {},
	"video/x-matroska": {},
	"video/ogg":        {},
	"video/3gpp":       {},
	"video/mpeg":       {},
}

func (s *assetService) validateUpload(req domain.UploadRequest) error {
	mimeType := extractMimeType(req.ContentType)
	if mimeType == "" {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedContentType, req.ContentType)
	}
	if _, ok := AllowedVideoMimeTypes[mimeType]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, mimeType)
	}
	if req.SizeBytes <= 0 {
		return domain.ErrInvalidFileSize
	}
	if req.SizeBytes > s.cfg.MaxFileSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrFileSizeTooBig, req.SizeBytes, s.cfg.MaxFileSize)
	}
	return nil
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mimeType
}

// findOwned loads an active asset and enforces ownership. A foreign-owned
// asset surfaces as not-found so existence never leaks.
func (s *assetService) findOwned(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.MediaAsset, error) {
	asset, err := s.uow.AssetRepo().FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.OwnerID != ownerID {
		return nil, domain.ErrAssetNotFound
	}
	return asset, nil
}

func statusView(a *domain.MediaAsset) *domain.AssetStatusView {
	return &domain.AssetStatusView{
		AssetID:    a.ID,
		ExternalID: a.ExternalID,
		Status:     a.Status,
		Filename:   a.Filename,
		ErrorText:  a.ExtraString(domain.ExtraError),
		UpdatedAt:  a.UpdatedAt,
	}
}

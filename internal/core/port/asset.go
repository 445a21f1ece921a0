package port

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// AssetService is an interface to define the upload orchestrator.
//
// The caller-facing operations enforce ownership: any asset that does not
// exist, is inactive, or belongs to someone else surfaces as
// domain.ErrAssetNotFound.
//
// BeginProcessing, CompleteFromProvider and MarkFailed are the asset state
// machine transitions. They are idempotent: re-applying a transition the
// asset has already taken is a no-op success, and a transition that would
// regress a terminal state is ignored.
type AssetService interface {
	Initiate(ctx context.Context, req domain.UploadRequest) (*domain.UploadGrant, error)
	GetStatus(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetStatusView, error)
	GetMetadata(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetMetadata, error)
	SignedPlaybackURL(ctx context.Context, assetID uuid.UUID, ownerID string, ttl time.Duration) (*domain.SignedPlayback, error)
	Delete(ctx context.Context, assetID uuid.UUID, ownerID string) error
	Retry(ctx context.Context, assetID uuid.UUID, ownerID string) (*domain.AssetStatusView, error)

	BeginProcessing(ctx context.Context, assetID uuid.UUID, externalID string) error
	CompleteFromProvider(ctx context.Context, assetID uuid.UUID, providerAsset *domain.ProviderAsset) error
	MarkFailed(ctx context.Context, assetID uuid.UUID, errText string, cancelled bool) error
}

package port

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// MediaAssetRepository is an interface to define media asset persistence.
// Advance is a single-row conditional update: it moves the asset to the
// target status only when its current status is one of from, and reports
// whether a row changed. A false return is how callers detect idempotent
// replays and out-of-order events.
type MediaAssetRepository interface {
	Create(ctx context.Context, asset domain.MediaAsset) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error)
	Advance(ctx context.Context, id uuid.UUID, from []domain.AssetStatus, to domain.AssetStatus) (bool, error)
	SetExternalID(ctx context.Context, id uuid.UUID, externalID string) error
	MergeExtra(ctx context.Context, id uuid.UUID, extra map[string]any) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindStuck(ctx context.Context, olderThan time.Time) ([]domain.MediaAsset, error)
	FindCompletedSince(ctx context.Context, since time.Time) ([]domain.MediaAsset, error)
	FindFailedBefore(ctx context.Context, before time.Time) ([]domain.MediaAsset, error)
}

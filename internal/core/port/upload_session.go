package port

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// UploadSessionRepository is an interface to interact with upload session records
type UploadSessionRepository interface {
	Create(ctx context.Context, session domain.UploadSession) error
	FindByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.UploadSession, error)
	// MarkUsed flips used=false to used=true and records the completion
	// time. Reports false when the session was already used.
	MarkUsed(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAssetID(ctx context.Context, assetID uuid.UUID) error
	FindAllExpired(ctx context.Context, before time.Time) ([]domain.UploadSession, error)
}

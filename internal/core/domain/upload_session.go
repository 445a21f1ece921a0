package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadSession tracks an in-flight direct upload to the media provider.
// A session is single use: once used it is never reactivated, and an
// unused session past its expiry is garbage.
type UploadSession struct {
	ID          uuid.UUID
	AssetID     uuid.UUID
	UploadID    string // provider upload target reference
	OwnerID     string
	ExpiresAt   time.Time
	Used        bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

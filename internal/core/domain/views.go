package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadRequest carries the validated caller input for a new upload
type UploadRequest struct {
	OwnerID     string
	CourseID    string
	LectureID   string
	Filename    string
	ContentType string
	SizeBytes   int64
	Category    string
}

// UploadGrant is what the caller needs to push bytes directly to the provider
type UploadGrant struct {
	AssetID   uuid.UUID
	SessionID uuid.UUID
	UploadURL string
	ExpiresAt time.Time
	Status    AssetStatus
}

// AssetStatusView is the caller-facing status of an asset
type AssetStatusView struct {
	AssetID    uuid.UUID
	ExternalID string
	Status     AssetStatus
	Filename   string
	ErrorText  string
	UpdatedAt  time.Time
}

// AssetMetadata is the playable view of a completed asset
type AssetMetadata struct {
	AssetID         uuid.UUID
	Filename        string
	ContentType     string
	SizeBytes       int64
	Category        string
	DurationSeconds int64
	PlaybackURL     string
	ThumbnailURL    string
	CreatedAt       time.Time
}

// SignedPlayback is a time-limited playback grant
type SignedPlayback struct {
	URL       string
	ExpiresAt time.Time
}

// VideoReference is the payload propagated to the owning content item when
// an asset becomes playable or is deleted.
type VideoReference struct {
	CourseID        string
	LectureID       string
	AssetID         uuid.UUID
	ExternalID      string
	PlaybackURL     string
	ThumbnailURL    string
	DurationSeconds int64
}

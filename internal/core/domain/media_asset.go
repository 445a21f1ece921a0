package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetStatus represents the processing status of a media asset
type AssetStatus string

const (
	AssetStatusPending    AssetStatus = "pending"
	AssetStatusUploading  AssetStatus = "uploading"
	AssetStatusProcessing AssetStatus = "processing"
	AssetStatusCompleted  AssetStatus = "completed"
	AssetStatusFailed     AssetStatus = "failed"
	AssetStatusCancelled  AssetStatus = "cancelled"
	AssetStatusDeleted    AssetStatus = "deleted"
)

// IsTerminal reports whether the status is a resting state that only an
// explicit retry or delete may leave.
func (s AssetStatus) IsTerminal() bool {
	switch s {
	case AssetStatusCompleted, AssetStatusFailed, AssetStatusCancelled, AssetStatusDeleted:
		return true
	}
	return false
}

// Extra map keys written by the event processor and the usage sweep.
const (
	ExtraDuration         = "duration"
	ExtraPlaybackID       = "playback_id"
	ExtraSignedPlaybackID = "signed_playback_id"
	ExtraPlaybackURL      = "playback_url"
	ExtraThumbnailURL     = "thumbnail_url"
	ExtraAspectRatio      = "aspect_ratio"
	ExtraResolutionTier   = "resolution_tier"
	ExtraError            = "error"
)

// MediaAsset represents a video tracked from upload request to playable content
type MediaAsset struct {
	ID          uuid.UUID
	ExternalID  string // provider-assigned asset id, empty until the upload converts
	OwnerID     string
	CourseID    string
	LectureID   string
	Filename    string
	ContentType string
	SizeBytes   int64
	Category    string
	Status      AssetStatus
	Extra       map[string]any
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExtraString returns a string value from the extra map, or "" when absent.
func (a *MediaAsset) ExtraString(key string) string {
	if a.Extra == nil {
		return ""
	}
	v, ok := a.Extra[key].(string)
	if !ok {
		return ""
	}
	return v
}

// ExtraFloat returns a numeric value from the extra map, or 0 when absent.
// JSON round-trips store numbers as float64.
func (a *MediaAsset) ExtraFloat(key string) float64 {
	if a.Extra == nil {
		return 0
	}
	v, ok := a.Extra[key].(float64)
	if !ok {
		return 0
	}
	return v
}

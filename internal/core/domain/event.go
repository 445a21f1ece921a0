package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventKind is a closed set of provider webhook event types this service
// reacts to. Anything else maps to EventKindUnknown and is ignored.
type EventKind string

const (
	EventKindAssetCreated    EventKind = "video.upload.asset_created"
	EventKindAssetReady      EventKind = "video.asset.ready"
	EventKindAssetErrored    EventKind = "video.asset.errored"
	EventKindUploadErrored   EventKind = "video.upload.errored"
	EventKindUploadCancelled EventKind = "video.upload.cancelled"
	EventKindUnknown         EventKind = "unknown"
)

// ProviderEvent mirrors the provider's webhook envelope
type ProviderEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Object    struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"object"`
	Data struct {
		ID               string               `json:"id"`
		Status           string               `json:"status"`
		AssetID          string               `json:"asset_id"`
		Duration         float64              `json:"duration"`
		AspectRatio      string               `json:"aspect_ratio"`
		ResolutionTier   string               `json:"resolution_tier"`
		Passthrough      string               `json:"passthrough"`
		PlaybackIDs      []ProviderPlaybackID `json:"playback_ids"`
		NewAssetSettings struct {
			Passthrough string `json:"passthrough"`
		} `json:"new_asset_settings"`
		Errors struct {
			Type     string   `json:"type"`
			Messages []string `json:"messages"`
		} `json:"errors"`
	} `json:"data"`
}

// Kind maps the raw event type onto the closed union.
func (e *ProviderEvent) Kind() EventKind {
	switch EventKind(e.Type) {
	case EventKindAssetCreated, EventKindAssetReady, EventKindAssetErrored,
		EventKindUploadErrored, EventKindUploadCancelled:
		return EventKind(e.Type)
	}
	return EventKindUnknown
}

// PassthroughPayload returns the opaque passthrough carried by the event,
// wherever the provider placed it for this event family.
func (e *ProviderEvent) PassthroughPayload() string {
	if e.Data.Passthrough != "" {
		return e.Data.Passthrough
	}
	return e.Data.NewAssetSettings.Passthrough
}

// ErrorText flattens the provider error block into a single line.
func (e *ProviderEvent) ErrorText() string {
	if len(e.Data.Errors.Messages) > 0 {
		return e.Data.Errors.Messages[0]
	}
	return e.Data.Errors.Type
}

// ProviderPlaybackID is a provider playback target and its access policy
type ProviderPlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

// Passthrough is the opaque payload round-tripped through the provider to
// correlate webhook events back to local records.
type Passthrough struct {
	OwnerID   string `json:"owner_id"`
	AssetID   string `json:"asset_id"`
	CourseID  string `json:"course_id"`
	LectureID string `json:"lecture_id,omitempty"`
}

// Encode serialises the passthrough for the provider upload request.
func (p Passthrough) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodePassthrough parses a passthrough payload and extracts the local
// asset id. A missing or unparseable asset id is a provider-side data
// defect, reported as ErrMissingPassthrough.
func DecodePassthrough(raw string) (Passthrough, uuid.UUID, error) {
	var p Passthrough
	if raw == "" {
		return p, uuid.Nil, ErrMissingPassthrough
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return p, uuid.Nil, ErrMissingPassthrough
	}
	assetID, err := uuid.Parse(p.AssetID)
	if err != nil {
		return p, uuid.Nil, ErrMissingPassthrough
	}
	return p, assetID, nil
}

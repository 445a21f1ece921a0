package port

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
)

// MediaProvider is an interface wrapping the external transcoding and
// playback provider. The actual bytes never pass through this service:
// clients push directly to the upload target URL.
type MediaProvider interface {
	CreateUploadTarget(ctx context.Context, passthrough string, corsOrigin string, timeout time.Duration) (*domain.UploadTarget, error)
	GetAsset(ctx context.Context, externalID string) (*domain.ProviderAsset, error)
	// DeleteAsset is idempotent: deleting an asset the provider no longer
	// has is success.
	DeleteAsset(ctx context.Context, externalID string) error
	AssetMetrics(ctx context.Context, externalID string) (map[string]any, error)
	PlaybackURL(playbackID string) string
	ThumbnailURL(playbackID string, atSeconds float64) string
	SignedPlaybackURL(playbackID string, ttl time.Duration) (string, time.Time, error)
	Ping(ctx context.Context) error
}

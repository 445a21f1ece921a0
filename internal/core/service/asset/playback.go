package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// SignedPlaybackURL issues a time-limited playback URL for a completed
// asset. Requires a signed-capable playback target on the provider asset.
func (s *assetService) SignedPlaybackURL(ctx context.Context, assetID uuid.UUID, ownerID string, ttl time.Duration) (*domain.SignedPlayback, error) {

	asset, err := s.findOwned(ctx, assetID, ownerID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetStatusCompleted || asset.ExternalID == "" {
		return nil, domain.ErrAssetNotReady
	}

	signedID := asset.ExtraString(domain.ExtraSignedPlaybackID)
	if signedID == "" {
		return nil, domain.ErrNoSignedPlayback
	}

	if ttl <= 0 {
		ttl = s.cfg.SignedURLTTL
	}

	url, expiresAt, err := s.provider.SignedPlaybackURL(signedID, ttl)
	if err != nil {
		return nil, fmt.Errorf("could not sign playback url: %w", err)
	}

	return &domain.SignedPlayback{URL: url, ExpiresAt: expiresAt}, nil
}

package mux

import (
	"fmt"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// PlaybackURL builds the public HLS manifest URL for a playback id
func (a *Adapter) PlaybackURL(playbackID string) string {
	return fmt.Sprintf("%s/%s.m3u8", a.config.StreamBase, playbackID)
}

// ThumbnailURL builds a still-frame URL at the given offset
func (a *Adapter) ThumbnailURL(playbackID string, atSeconds float64) string {
	return fmt.Sprintf("%s/%s/thumbnail.jpg?time=%g", a.config.ImageBase, playbackID, atSeconds)
}

// SignedPlaybackURL mints a short-lived playback token for a signed
// playback id. The token is an RS256 JWT the provider's edge validates:
// sub names the playback id, aud "v" scopes it to video playback.
func (a *Adapter) SignedPlaybackURL(playbackID string, ttl time.Duration) (string, time.Time, error) {
	if a.signingKey == nil || a.config.SigningKeyID == "" {
		return "", time.Time{}, domain.ErrNoSignedPlayback
	}

	expiresAt := time.Now().Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": playbackID,
		"aud": "v",
		"exp": expiresAt.Unix(),
	})
	token.Header["kid"] = a.config.SigningKeyID

	signed, err := token.SignedString(a.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign playback token: %w", err)
	}

	url := fmt.Sprintf("%s/%s.m3u8?token=%s", a.config.StreamBase, playbackID, signed)
	return url, expiresAt, nil
}

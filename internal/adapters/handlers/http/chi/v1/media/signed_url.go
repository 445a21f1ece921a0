package media

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
)

// V1SignedURLRequest optionally overrides the configured token lifetime.
// Hours win when both fields are set.
type V1SignedURLRequest struct {
	ExpirationHours int64 `json:"expiration_hours"`
	TTLSeconds      int64 `json:"ttl_seconds"`
}

func (req V1SignedURLRequest) ttl() time.Duration {
	if req.ExpirationHours > 0 {
		return time.Duration(req.ExpirationHours) * time.Hour
	}
	return time.Duration(req.TTLSeconds) * time.Second
}

// V1SignedURLResponse is a time-limited playback grant
type V1SignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignedURLV1 is the function that handles SignedPlaybackURL
func (h *HandlerV1) SignedURLV1(w http.ResponseWriter, r *http.Request) {

	assetID, ok := h.assetIDParam(w, r)
	if !ok {
		return
	}

	// body is optional
	var req V1SignedURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body", h.logger)
		return
	}

	playback, err := h.assetService.SignedPlaybackURL(r.Context(), assetID, UserID(r.Context()), req.ttl())
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, "not_found", "asset not found", h.logger)
		return
	case errors.Is(err, domain.ErrAssetNotReady):
		writeError(w, http.StatusConflict, "not_ready", "asset is not ready for playback", h.logger)
		return
	case errors.Is(err, domain.ErrNoSignedPlayback):
		writeError(w, http.StatusConflict, "no_signed_playback", "asset has no signed playback target", h.logger)
		return
	case err != nil:
		h.logger.Error("error building signed playback url", "asset_id", assetID, "error", err)
		writeError(w, http.StatusServiceUnavailable, "internal", "service unavailable", h.logger)
		return
	}

	resp := V1SignedURLResponse{
		URL:       playback.URL,
		ExpiresAt: playback.ExpiresAt,
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

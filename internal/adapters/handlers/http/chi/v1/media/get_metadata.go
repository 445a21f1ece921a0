package media

import (
	"errors"
	"net/http"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// V1MetadataResponse is the playable view of a completed asset
type V1MetadataResponse struct {
	AssetID         uuid.UUID `json:"asset_id"`
	Filename        string    `json:"filename"`
	ContentType     string    `json:"content_type"`
	SizeBytes       int64     `json:"size_bytes"`
	Category        string    `json:"category"`
	DurationSeconds int64     `json:"duration_seconds"`
	PlaybackURL     string    `json:"playback_url"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// GetMetadataV1 is the function that handles GetMetadata
func (h *HandlerV1) GetMetadataV1(w http.ResponseWriter, r *http.Request) {

	assetID, ok := h.assetIDParam(w, r)
	if !ok {
		return
	}

	meta, err := h.assetService.GetMetadata(r.Context(), assetID, UserID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, "not_found", "asset not found", h.logger)
		return
	case errors.Is(err, domain.ErrAssetNotReady):
		writeError(w, http.StatusConflict, "not_ready", "asset is not ready for playback", h.logger)
		return
	case err != nil:
		h.logger.Error("error getting asset metadata", "asset_id", assetID, "error", err)
		writeError(w, http.StatusServiceUnavailable, "internal", "service unavailable", h.logger)
		return
	}

	resp := V1MetadataResponse{
		AssetID:         meta.AssetID,
		Filename:        meta.Filename,
		ContentType:     meta.ContentType,
		SizeBytes:       meta.SizeBytes,
		Category:        meta.Category,
		DurationSeconds: meta.DurationSeconds,
		PlaybackURL:     meta.PlaybackURL,
		ThumbnailURL:    meta.ThumbnailURL,
		CreatedAt:       meta.CreatedAt,
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

package media

import (
	"errors"
	"net/http"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
)

// RetryV1 is the function that handles Retry
func (h *HandlerV1) RetryV1(w http.ResponseWriter, r *http.Request) {

	assetID, ok := h.assetIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.assetService.Retry(r.Context(), assetID, UserID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, "not_found", "asset not found", h.logger)
		return
	case errors.Is(err, domain.ErrAssetNotRetryable):
		writeError(w, http.StatusConflict, "not_retryable", "asset is not in a failed state", h.logger)
		return
	case errors.Is(err, domain.ErrProviderUnavailable):
		writeError(w, http.StatusServiceUnavailable, "provider_unavailable", "media provider unreachable", h.logger)
		return
	case err != nil:
		h.logger.Error("error retrying asset", "asset_id", assetID, "error", err)
		writeError(w, http.StatusServiceUnavailable, "internal", "service unavailable", h.logger)
		return
	}

	resp := V1StatusResponse{
		AssetID:   view.AssetID,
		Status:    string(view.Status),
		Filename:  view.Filename,
		Error:     view.ErrorText,
		UpdatedAt: view.UpdatedAt,
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

package media

import (
	"errors"
	"net/http"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// V1DeleteResponse confirms which asset was removed
type V1DeleteResponse struct {
	AssetID uuid.UUID `json:"asset_id"`
	Deleted bool      `json:"deleted"`
}

// DeleteV1 is the function that handles Delete
func (h *HandlerV1) DeleteV1(w http.ResponseWriter, r *http.Request) {

	assetID, ok := h.assetIDParam(w, r)
	if !ok {
		return
	}

	err := h.assetService.Delete(r.Context(), assetID, UserID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, "not_found", "asset not found", h.logger)
		return
	case err != nil:
		h.logger.Error("error deleting asset", "asset_id", assetID, "error", err)
		writeError(w, http.StatusServiceUnavailable, "internal", "service unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, V1DeleteResponse{AssetID: assetID, Deleted: true}, h.logger)
}

package media

import (
	"errors"
	"net/http"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1StatusResponse is the caller-facing asset status
type V1StatusResponse struct {
	AssetID   uuid.UUID `json:"asset_id"`
	Status    string    `json:"status"`
	Filename  string    `json:"filename"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetStatusV1 is the function that handles GetStatus
func (h *HandlerV1) GetStatusV1(w http.ResponseWriter, r *http.Request) {

	assetID, ok := h.assetIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.assetService.GetStatus(r.Context(), assetID, UserID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, "not_found", "asset not found", h.logger)
		return
	case err != nil:
		h.logger.Error("error getting asset status", "asset_id", assetID, "error", err)
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

func (h *HandlerV1) assetIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "assetID")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "asset id is required", h.logger)
		return uuid.Nil, false
	}
	assetID, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "asset id must be a uuid", h.logger)
		return uuid.Nil, false
	}
	return assetID, true
}

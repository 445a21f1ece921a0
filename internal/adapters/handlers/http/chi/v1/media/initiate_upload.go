package media

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// V1InitiateUploadRequest is the request to start a direct video upload
type V1InitiateUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	CourseID    string `json:"course_id"`
	LectureID   string `json:"lecture_id"`
	Category    string `json:"category"`
}

// V1InitiateUploadResponse hands the caller everything needed to push the
// file straight to the provider
type V1InitiateUploadResponse struct {
	AssetID   uuid.UUID `json:"asset_id"`
	SessionID uuid.UUID `json:"session_id"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
	Status    string    `json:"status"`
}

func (h *HandlerV1) InitiateUploadV1(w http.ResponseWriter, r *http.Request) {

	var req V1InitiateUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding initiate upload request", "error", err)
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body", h.logger)
		return
	}

	if req.Filename == "" || req.ContentType == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "filename and content_type are required", h.logger)
		return
	}

	grant, err := h.assetService.Initiate(r.Context(), domain.UploadRequest{
		OwnerID:     UserID(r.Context()),
		CourseID:    req.CourseID,
		LectureID:   req.LectureID,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		Category:    req.Category,
	})
	switch {
	case errors.Is(err, domain.ErrUnsupportedContentType),
		errors.Is(err, domain.ErrInvalidFileSize),
		errors.Is(err, domain.ErrFileSizeTooBig):
		writeError(w, http.StatusBadRequest, "invalid_upload", err.Error(), h.logger)
		return
	case errors.Is(err, domain.ErrProviderUnavailable):
		h.logger.Error("provider refused upload target", "error", err)
		writeError(w, http.StatusServiceUnavailable, "provider_unavailable", "upload service unavailable", h.logger)
		return
	case err != nil:
		h.logger.Error("error initiating upload", "error", err)
		writeError(w, http.StatusServiceUnavailable, "internal", "service unavailable", h.logger)
		return
	}

	resp := V1InitiateUploadResponse{
		AssetID:   grant.AssetID,
		SessionID: grant.SessionID,
		UploadURL: grant.UploadURL,
		ExpiresAt: grant.ExpiresAt,
		Status:    string(grant.Status),
	}
	writeJSON(w, http.StatusCreated, resp, h.logger)
}

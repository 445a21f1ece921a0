package media_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/handlers/http/chi"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/handlers/http/chi/v1/media"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/provider"
	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/asset"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/webhook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(assetService port.AssetService, webhookService port.WebhookService) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := media.NewMediaHandlerV1(assetService, webhookService, discardLogger)
	cfg := &config.Config{Env: config.Env{Env: "test"}}
	return chi.NewRouter(discardLogger, handler, provider.NewMockMediaProvider(), cfg)
}

func TestInitiateUploadV1(t *testing.T) {
	const body = `{"filename":"lecture.mp4","content_type":"video/mp4","size_bytes":1048576,"course_id":"course-1","lecture_id":"lecture-1","category":"lecture"}`

	t.Run("success - upload grant returned", func(t *testing.T) {
		// Arrange
		grant := &domain.UploadGrant{
			AssetID:   uuid.New(),
			SessionID: uuid.New(),
			UploadURL: "https://storage.example.com/upload/abc",
			ExpiresAt: time.Now().Add(time.Hour),
			Status:    domain.AssetStatusUploading,
		}

		mockService := asset.NewMockAssetService()
		mockService.On("Initiate", mock.Anything, mock.MatchedBy(func(req domain.UploadRequest) bool {
			return req.OwnerID == "user-1" && req.Filename == "lecture.mp4" && req.SizeBytes == 1048576
		})).Return(grant, nil)

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media/initiate-upload", strings.NewReader(body))
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response media.V1InitiateUploadResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, grant.AssetID, response.AssetID)
		assert.Equal(t, grant.SessionID, response.SessionID)
		assert.Equal(t, grant.UploadURL, response.UploadURL)
		assert.Equal(t, "uploading", response.Status)

		mockService.AssertExpectations(t)
	})

	t.Run("error - missing caller identity", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media/initiate-upload", strings.NewReader(body))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "unauthorized", response.Error.Code)

		mockService.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
	})

	t.Run("error - invalid json body", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media/initiate-upload", strings.NewReader("{not json"))
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
	})

	t.Run("error - missing filename", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media/initiate-upload", strings.NewReader(`{"content_type":"video/mp4"}`))
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
	})

	t.Run("error - unsupported content type", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("Initiate", mock.Anything, mock.Anything).
			Return(nil, domain.ErrUnsupportedContentType)

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media/initiate-upload",
			strings.NewReader(`{"filename":"notes.pdf","content_type":"application/pdf","size_bytes":1024}`))
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "invalid_upload", response.Error.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("error - file too big", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("Initiate", mock.Anything, mock.Anything).
			Return(nil, domain.ErrFileSizeTooBig)

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media/initiate-upload", strings.NewReader(body))
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - provider unavailable", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("Initiate", mock.Anything, mock.Anything).
			Return(nil, domain.ErrProviderUnavailable)

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media/initiate-upload", strings.NewReader(body))
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "provider_unavailable", response.Error.Code)

		mockService.AssertExpectations(t)
	})
}

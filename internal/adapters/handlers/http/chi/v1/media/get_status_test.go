package media_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/handlers/http/chi/v1/media"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/asset"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/webhook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetStatusV1(t *testing.T) {
	t.Run("success - status returned", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()
		view := &domain.AssetStatusView{
			AssetID:   assetID,
			Status:    domain.AssetStatusProcessing,
			Filename:  "lecture.mp4",
			UpdatedAt: time.Now(),
		}

		mockService := asset.NewMockAssetService()
		mockService.On("GetStatus", mock.Anything, assetID, "user-1").Return(view, nil)

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/media/status/"+assetID.String(), nil)
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var response media.V1StatusResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, assetID, response.AssetID)
		assert.Equal(t, "processing", response.Status)
		assert.Equal(t, "lecture.mp4", response.Filename)
		assert.Empty(t, response.Error)

		mockService.AssertExpectations(t)
	})

	t.Run("success - failed asset carries error text", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()
		view := &domain.AssetStatusView{
			AssetID:   assetID,
			Status:    domain.AssetStatusFailed,
			Filename:  "lecture.mp4",
			ErrorText: "file is not a video",
			UpdatedAt: time.Now(),
		}

		mockService := asset.NewMockAssetService()
		mockService.On("GetStatus", mock.Anything, assetID, "user-1").Return(view, nil)

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/media/status/"+assetID.String(), nil)
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var response media.V1StatusResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "failed", response.Status)
		assert.Equal(t, "file is not a video", response.Error)
	})

	t.Run("error - asset not found", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockService := asset.NewMockAssetService()
		mockService.On("GetStatus", mock.Anything, assetID, "user-1").
			Return(nil, domain.ErrAssetNotFound)

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/media/status/"+assetID.String(), nil)
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - invalid asset ID format", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/media/status/not-a-uuid", nil)
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - service internal error", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockService := asset.NewMockAssetService()
		mockService.On("GetStatus", mock.Anything, assetID, "user-1").
			Return(nil, errors.New("database connection lost"))

		h := newTestRouter(mockService, webhook.NewMockWebhookService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/media/status/"+assetID.String(), nil)
		req.Header.Set("X-User-Id", "user-1")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockService.AssertExpectations(t)
	})
}

package mux

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Adapter is an adapter for the Mux video API. Upload bytes never pass
// through it: clients push straight to the direct upload URL it hands out.
type Adapter struct {
	httpClient *http.Client
	config     config.ProviderConfig
	signingKey *rsa.PrivateKey
	logger     *slog.Logger
}

// NewAdapter returns Adapter. The playback signing key is optional; without
// it SignedPlaybackURL returns domain.ErrNoSignedPlayback.
func NewAdapter(cfg config.ProviderConfig, logger *slog.Logger) (*Adapter, error) {
	a := &Adapter{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		logger:     logger,
	}

	if cfg.SigningKey != "" {
		pemBytes, err := base64.StdEncoding.DecodeString(cfg.SigningKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode signing key: %w", err)
		}
		key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse signing key: %w", err)
		}
		a.signingKey = key
	}

	return a, nil
}

type uploadRequest struct {
	NewAssetSettings newAssetSettings `json:"new_asset_settings"`
	CORSOrigin       string           `json:"cors_origin"`
	Timeout          int64            `json:"timeout"`
}

type newAssetSettings struct {
	PlaybackPolicy []string `json:"playback_policy"`
	Passthrough    string   `json:"passthrough"`
	VideoQuality   string   `json:"video_quality,omitempty"`
}

type uploadResponse struct {
	Data struct {
		ID      string `json:"id"`
		URL     string `json:"url"`
		Timeout int64  `json:"timeout"`
		Status  string `json:"status"`
	} `json:"data"`
}

// CreateUploadTarget asks the provider for a direct upload slot carrying the
// passthrough payload.
func (a *Adapter) CreateUploadTarget(ctx context.Context, passthrough string, corsOrigin string, timeout time.Duration) (*domain.UploadTarget, error) {
	body := uploadRequest{
		NewAssetSettings: newAssetSettings{
			PlaybackPolicy: []string{domain.PlaybackPolicyPublic, domain.PlaybackPolicySigned},
			Passthrough:    passthrough,
		},
		CORSOrigin: corsOrigin,
		Timeout:    int64(timeout.Seconds()),
	}

	var resp uploadResponse
	if err := a.do(ctx, http.MethodPost, "/video/v1/uploads", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to create upload: %w", err)
	}

	return &domain.UploadTarget{
		ID:      resp.Data.ID,
		URL:     resp.Data.URL,
		Timeout: time.Duration(resp.Data.Timeout) * time.Second,
	}, nil
}

type assetResponse struct {
	Data struct {
		ID             string  `json:"id"`
		Status         string  `json:"status"`
		Duration       float64 `json:"duration"`
		AspectRatio    string  `json:"aspect_ratio"`
		ResolutionTier string  `json:"resolution_tier"`
		Passthrough    string  `json:"passthrough"`
		PlaybackIDs    []struct {
			ID     string `json:"id"`
			Policy string `json:"policy"`
		} `json:"playback_ids"`
		Errors struct {
			Type     string   `json:"type"`
			Messages []string `json:"messages"`
		} `json:"errors"`
	} `json:"data"`
}

// GetAsset fetches the provider's current view of an asset
func (a *Adapter) GetAsset(ctx context.Context, externalID string) (*domain.ProviderAsset, error) {
	var resp assetResponse
	if err := a.do(ctx, http.MethodGet, "/video/v1/assets/"+externalID, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", externalID, err)
	}

	asset := &domain.ProviderAsset{
		ID:             resp.Data.ID,
		Status:         resp.Data.Status,
		Duration:       resp.Data.Duration,
		AspectRatio:    resp.Data.AspectRatio,
		ResolutionTier: resp.Data.ResolutionTier,
		Passthrough:    resp.Data.Passthrough,
	}
	for _, p := range resp.Data.PlaybackIDs {
		asset.PlaybackIDs = append(asset.PlaybackIDs, domain.ProviderPlaybackID{ID: p.ID, Policy: p.Policy})
	}
	if len(resp.Data.Errors.Messages) > 0 {
		asset.ErrorText = resp.Data.Errors.Messages[0]
	} else if resp.Data.Errors.Type != "" {
		asset.ErrorText = resp.Data.Errors.Type
	}
	return asset, nil
}

// DeleteAsset removes the asset on the provider side. A 404 is success: the
// asset is already gone.
func (a *Adapter) DeleteAsset(ctx context.Context, externalID string) error {
	err := a.do(ctx, http.MethodDelete, "/video/v1/assets/"+externalID, nil, nil)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete asset %s: %w", externalID, err)
	}
	return nil
}

type viewsResponse struct {
	TotalRowCount int64 `json:"total_row_count"`
	Data          []struct {
		WatchTime        float64 `json:"watch_time"`
		ViewerExperience float64 `json:"viewer_experience_score"`
	} `json:"data"`
}

// AssetMetrics pulls playback usage counters for an asset from the data API.
func (a *Adapter) AssetMetrics(ctx context.Context, externalID string) (map[string]any, error) {
	path := "/data/v1/video-views?limit=1&filters[]=asset_id:" + externalID

	var resp viewsResponse
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get asset metrics %s: %w", externalID, err)
	}

	metrics := map[string]any{
		"views":              resp.TotalRowCount,
		"usage_collected_at": time.Now().UTC().Format(time.RFC3339),
	}
	if len(resp.Data) > 0 {
		metrics["watch_time"] = resp.Data[0].WatchTime
	}
	return metrics, nil
}

// Ping verifies credentials and reachability with a cheap list call
func (a *Adapter) Ping(ctx context.Context) error {
	if err := a.do(ctx, http.MethodGet, "/video/v1/uploads?limit=1", nil, nil); err != nil {
		return fmt.Errorf("provider unreachable: %w", err)
	}
	return nil
}

type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

func (a *Adapter) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.config.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(a.config.TokenID, a.config.TokenSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &apiError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

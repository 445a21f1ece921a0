package webhook

import (
	"log/slog"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"
)

type webhookService struct {
	verifier  port.SignatureVerifier
	assets    port.AssetService
	tolerance time.Duration
	logger    *slog.Logger
}

// NewWebhookService creates a new webhook event processor
func NewWebhookService(verifier port.SignatureVerifier, assets port.AssetService, tolerance time.Duration, logger *slog.Logger) port.WebhookService {
	return &webhookService{
		verifier:  verifier,
		assets:    assets,
		tolerance: tolerance,
		logger:    logger,
	}
}

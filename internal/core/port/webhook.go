package port

import (
	"context"
	"time"
)

// WebhookService is an interface to define provider callback processing
type WebhookService interface {
	HandleEvent(ctx context.Context, payload []byte, signatureHeader string, now time.Time) error
}

// SignatureVerifier validates the authenticity of an inbound provider
// callback. Malformed input is verification failure, never a panic.
type SignatureVerifier interface {
	Verify(payload []byte, signatureHeader string) bool
}

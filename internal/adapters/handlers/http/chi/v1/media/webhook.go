package media

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
)

// webhook bodies are tiny json documents; cap protects against abuse
const maxWebhookBody = 1 << 20

// WebhookV1 receives provider callbacks. The response code steers the
// provider's redelivery: 2xx stops retries, 5xx asks for another attempt.
func (h *HandlerV1) WebhookV1(w http.ResponseWriter, r *http.Request) {

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "unreadable body", h.logger)
		return
	}

	handleErr := h.webhookService.HandleEvent(r.Context(), payload, r.Header.Get("Mux-Signature"), time.Now())
	switch {
	case errors.Is(handleErr, domain.ErrInvalidSignature), errors.Is(handleErr, domain.ErrStaleEvent):
		writeError(w, http.StatusUnauthorized, "unauthorized", "signature verification failed", h.logger)
		return
	case errors.Is(handleErr, domain.ErrMalformedEvent):
		writeError(w, http.StatusBadRequest, "bad_request", "undecodable event", h.logger)
		return
	case handleErr != nil:
		// local fault: signal the provider to redeliver
		h.logger.Error("error processing webhook event", "error", handleErr)
		writeError(w, http.StatusServiceUnavailable, "internal", "event processing failed", h.logger)
		return
	}

	w.WriteHeader(http.StatusOK)
}

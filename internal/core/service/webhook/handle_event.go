package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
)

// HandleEvent verifies, decodes and dispatches one provider callback.
//
// Every dispatched transition is idempotent, so at-least-once delivery and
// out-of-order arrival reduce to conditional no-ops downstream. Events that
// can never be processed (unknown kind, unusable passthrough) return nil so
// the provider stops redelivering them.
func (w *webhookService) HandleEvent(ctx context.Context, payload []byte, signatureHeader string, now time.Time) error {

	if !w.verifier.Verify(payload, signatureHeader) {
		return domain.ErrInvalidSignature
	}

	var event domain.ProviderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedEvent, err)
	}

	// bound replay exposure: even a correctly signed payload is rejected
	// once it ages past the tolerance
	if event.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing created_at", domain.ErrMalformedEvent)
	}
	age := now.Sub(event.CreatedAt)
	if age > w.tolerance || age < -w.tolerance {
		return fmt.Errorf("%w: created %s ago", domain.ErrStaleEvent, age)
	}

	kind := event.Kind()
	if kind == domain.EventKindUnknown {
		w.logger.Info("ignoring unhandled webhook event", "type", event.Type, "object_id", event.Object.ID)
		return nil
	}

	_, assetID, err := domain.DecodePassthrough(event.PassthroughPayload())
	if err != nil {
		if errors.Is(err, domain.ErrMissingPassthrough) {
			// provider-side data defect, not transient: discard so the
			// provider does not retry forever
			w.logger.Error("discarding webhook event without usable passthrough", "type", event.Type, "object_id", event.Object.ID)
			return nil
		}
		return err
	}

	w.logger.Info("handling webhook event", "type", event.Type, "asset_id", assetID, "object_id", event.Object.ID)

	switch kind {
	case domain.EventKindAssetCreated:
		return w.assets.BeginProcessing(ctx, assetID, event.Data.AssetID)

	case domain.EventKindAssetReady:
		return w.assets.CompleteFromProvider(ctx, assetID, &domain.ProviderAsset{
			ID:             event.Data.ID,
			Status:         domain.ProviderAssetReady,
			Duration:       event.Data.Duration,
			AspectRatio:    event.Data.AspectRatio,
			ResolutionTier: event.Data.ResolutionTier,
			PlaybackIDs:    event.Data.PlaybackIDs,
		})

	case domain.EventKindAssetErrored, domain.EventKindUploadErrored:
		return w.assets.MarkFailed(ctx, assetID, w.errorText(&event), false)

	case domain.EventKindUploadCancelled:
		return w.assets.MarkFailed(ctx, assetID, w.errorText(&event), true)
	}

	return nil
}

func (w *webhookService) errorText(event *domain.ProviderEvent) string {
	if text := event.ErrorText(); text != "" {
		return text
	}
	return string(event.Kind())
}

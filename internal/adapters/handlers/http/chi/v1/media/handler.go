package media

import (
	"log/slog"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 media routes
type HandlerV1 struct {
	assetService   port.AssetService
	webhookService port.WebhookService
	logger         *slog.Logger
}

// NewMediaHandlerV1 creates HandlerV1
func NewMediaHandlerV1(assetService port.AssetService, webhookService port.WebhookService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		assetService:   assetService,
		webhookService: webhookService,
		logger:         logger,
	}
}

// Routes exposes handler routes. The webhook stays outside the identity
// middleware: the provider authenticates with its signature, not a user.
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/webhook", h.WebhookV1)

	router.Group(func(r chi.Router) {
		r.Use(RequireUser(h.logger))

		r.Post("/initiate-upload", h.InitiateUploadV1)
		r.Get("/status/{assetID}", h.GetStatusV1)
		r.Get("/metadata/{assetID}", h.GetMetadataV1)
		r.Post("/signed-url/{assetID}", h.SignedURLV1)
		r.Post("/retry/{assetID}", h.RetryV1)
		r.Delete("/{assetID}", h.DeleteV1)
	})

	return router
}

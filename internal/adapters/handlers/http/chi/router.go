package chi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/handlers/http/chi/v1/media"
	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, mediaHandler *media.HandlerV1, provider port.MediaProvider, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(1 << 20)) //1mb, uploads never pass through this service

	if cfg.Env.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-User-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/media", mediaHandler.Routes())
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp := HealthResponse{
			Status:        "ok",
			Timestamp:     time.Now(),
			Environment:   cfg.Env.Env,
			MaxUploadSize: cfg.Upload.MaxFileSize,
			CORSOrigin:    cfg.Upload.CORSOrigin,
			Provider:      "ok",
		}
		status := http.StatusOK
		if err := provider.Ping(ctx); err != nil {
			logger.Warn("provider health check failed", "error", err)
			resp.Status = "degraded"
			resp.Provider = "unreachable"
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Environment   string    `json:"environment"`
	MaxUploadSize int64     `json:"max_upload_size"`
	CORSOrigin    string    `json:"cors_origin"`
	Provider      string    `json:"provider"`
}

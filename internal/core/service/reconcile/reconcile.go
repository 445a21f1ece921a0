package reconcile

import (
	"log/slog"
	"sync/atomic"

	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"
)

type reconcileService struct {
	uow      port.UnitOfWork
	provider port.MediaProvider
	assets   port.AssetService
	cfg      config.ReconcileConfig
	logger   *slog.Logger

	// advisory guard so two session sweeps never overlap
	expiring atomic.Bool
}

// NewReconcileService creates a new reconciliation service
func NewReconcileService(uow port.UnitOfWork, provider port.MediaProvider, assets port.AssetService, cfg config.ReconcileConfig, logger *slog.Logger) port.ReconcileService {
	return &reconcileService{
		uow:      uow,
		provider: provider,
		assets:   assets,
		cfg:      cfg,
		logger:   logger,
	}
}

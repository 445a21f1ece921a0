package port

import (
	"context"
	"time"
)

// ReconcileService is a service that audits records whose state is
// inconsistent with elapsed time and repairs or retires them. Each sweep
// isolates per-item failures: one bad record never aborts the batch.
type ReconcileService interface {
	ExpireSessions(ctx context.Context, now time.Time) error
	RetryStuck(ctx context.Context, now time.Time) error
	MergeUsage(ctx context.Context, now time.Time) error
	PurgeFailed(ctx context.Context, now time.Time) error
}

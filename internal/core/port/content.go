package port

import (
	"context"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// ContentPublisher propagates asset playback changes to the owning content
// item (the course/lecture collaborator). Publishing is best-effort: the
// asset record stays the source of truth and callers log-and-continue on
// failure.
type ContentPublisher interface {
	PublishVideoReference(ctx context.Context, ref domain.VideoReference) error
	PublishVideoRemoved(ctx context.Context, courseID, lectureID string, assetID uuid.UUID) error
}

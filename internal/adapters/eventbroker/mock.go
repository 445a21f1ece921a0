package eventbroker

import (
	"context"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockContentPublisher struct {
	mock.Mock
}

func NewMockContentPublisher() *MockContentPublisher {
	return &MockContentPublisher{}
}

func (m *MockContentPublisher) PublishVideoReference(ctx context.Context, ref domain.VideoReference) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockContentPublisher) PublishVideoRemoved(ctx context.Context, courseID, lectureID string, assetID uuid.UUID) error {
	args := m.Called(ctx, courseID, lectureID, assetID)
	return args.Error(0)
}

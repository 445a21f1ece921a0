package webhook

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockWebhookService is a mock implementation of WebhookService
type MockWebhookService struct {
	mock.Mock
}

// NewMockWebhookService creates a new MockWebhookService
func NewMockWebhookService() *MockWebhookService {
	return &MockWebhookService{}
}

func (m *MockWebhookService) HandleEvent(ctx context.Context, payload []byte, signatureHeader string, now time.Time) error {
	args := m.Called(ctx, payload, signatureHeader, now)
	return args.Error(0)
}

// MockSignatureVerifier is a mock implementation of SignatureVerifier
type MockSignatureVerifier struct {
	mock.Mock
}

// NewMockSignatureVerifier creates a new MockSignatureVerifier
func NewMockSignatureVerifier() *MockSignatureVerifier {
	return &MockSignatureVerifier{}
}

func (m *MockSignatureVerifier) Verify(payload []byte, signatureHeader string) bool {
	args := m.Called(payload, signatureHeader)
	return args.Bool(0)
}

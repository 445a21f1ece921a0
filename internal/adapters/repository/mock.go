package repository

import (
	"context"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMediaAssetRepository struct {
	mock.Mock
}

func NewMockMediaAssetRepository() *MockMediaAssetRepository {
	return &MockMediaAssetRepository{}
}

func (m *MockMediaAssetRepository) Create(ctx context.Context, asset domain.MediaAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockMediaAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}

func (m *MockMediaAssetRepository) Advance(ctx context.Context, id uuid.UUID, from []domain.AssetStatus, to domain.AssetStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockMediaAssetRepository) SetExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	args := m.Called(ctx, id, externalID)
	return args.Error(0)
}

func (m *MockMediaAssetRepository) MergeExtra(ctx context.Context, id uuid.UUID, extra map[string]any) error {
	args := m.Called(ctx, id, extra)
	return args.Error(0)
}

func (m *MockMediaAssetRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaAssetRepository) FindStuck(ctx context.Context, olderThan time.Time) ([]domain.MediaAsset, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaAsset), args.Error(1)
}

func (m *MockMediaAssetRepository) FindCompletedSince(ctx context.Context, since time.Time) ([]domain.MediaAsset, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaAsset), args.Error(1)
}

func (m *MockMediaAssetRepository) FindFailedBefore(ctx context.Context, before time.Time) ([]domain.MediaAsset, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaAsset), args.Error(1)
}

type MockUploadSessionRepository struct {
	mock.Mock
}

func NewMockUploadSessionRepository() *MockUploadSessionRepository {
	return &MockUploadSessionRepository{}
}

func (m *MockUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.UploadSession, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadSessionRepository) MarkUsed(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, completedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockUploadSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) DeleteByAssetID(ctx context.Context, assetID uuid.UUID) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindAllExpired(ctx context.Context, before time.Time) ([]domain.UploadSession, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadSession), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	assetRepo   *MockMediaAssetRepository
	sessionRepo *MockUploadSessionRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		assetRepo:   &MockMediaAssetRepository{},
		sessionRepo: &MockUploadSessionRepository{},
	}
}

func (m *MockUnitOfWork) AssetRepo() port.MediaAssetRepository {
	return m.assetRepo
}

func (m *MockUnitOfWork) SessionRepo() port.UploadSessionRepository {
	return m.sessionRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetAssetRepoMock() *MockMediaAssetRepository {
	return m.assetRepo
}

func (m *MockUnitOfWork) GetSessionRepoMock() *MockUploadSessionRepository {
	return m.sessionRepo
}

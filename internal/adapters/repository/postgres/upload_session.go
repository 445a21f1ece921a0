package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/google/uuid"
)

type sqlUploadSessionRepository struct {
	db SQLQuerier
}

// NewSQLUploadSessionRepository creates sqlUploadSessionRepository that implements port.UploadSessionRepository
func NewSQLUploadSessionRepository(db SQLQuerier) port.UploadSessionRepository {
	return &sqlUploadSessionRepository{
		db: db,
	}
}

// Create creates a new upload session
func (s *sqlUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	query := `INSERT INTO upload_sessions (id, asset_id, upload_id, owner_id, expires_at, used)
              VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		session.ID, session.AssetID, session.UploadID, session.OwnerID,
		session.ExpiresAt, session.Used,
	)
	if err != nil {
		return fmt.Errorf("error inserting upload session: %w", err)
	}
	return nil
}

// FindByAssetID finds the session opened for an asset
func (s *sqlUploadSessionRepository) FindByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.UploadSession, error) {
	query := `SELECT id, asset_id, upload_id, owner_id, expires_at, used, completed_at, created_at, updated_at
              FROM upload_sessions
              WHERE asset_id = $1`

	var (
		session     domain.UploadSession
		completedAt sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, assetID).Scan(
		&session.ID,
		&session.AssetID,
		&session.UploadID,
		&session.OwnerID,
		&session.ExpiresAt,
		&session.Used,
		&completedAt,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}
	return &session, nil
}

// MarkUsed closes the session. The used = false guard makes replays report
// false instead of moving completed_at.
func (s *sqlUploadSessionRepository) MarkUsed(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error) {
	query := `UPDATE upload_sessions
              SET used = true, completed_at = $1, updated_at = now()
              WHERE id = $2 AND used = false`

	result, err := s.db.ExecContext(ctx, query, completedAt, id)
	if err != nil {
		return false, fmt.Errorf("error closing upload session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

// Delete removes a session
func (s *sqlUploadSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM upload_sessions WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting upload session: %w", err)
	}
	return nil
}

// DeleteByAssetID removes the sessions attached to an asset
func (s *sqlUploadSessionRepository) DeleteByAssetID(ctx context.Context, assetID uuid.UUID) error {
	query := `DELETE FROM upload_sessions WHERE asset_id = $1`

	_, err := s.db.ExecContext(ctx, query, assetID)
	if err != nil {
		return fmt.Errorf("error deleting upload sessions for asset: %w", err)
	}
	return nil
}

// FindAllExpired finds unused sessions that expired before the cutoff
func (s *sqlUploadSessionRepository) FindAllExpired(ctx context.Context, before time.Time) ([]domain.UploadSession, error) {
	query := `SELECT id, asset_id, upload_id, owner_id, expires_at, used, completed_at, created_at, updated_at
              FROM upload_sessions
              WHERE used = false AND expires_at < $1`

	rows, err := s.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("error querying expired sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.UploadSession
	for rows.Next() {
		var (
			session     domain.UploadSession
			completedAt sql.NullTime
		)
		err := rows.Scan(
			&session.ID,
			&session.AssetID,
			&session.UploadID,
			&session.OwnerID,
			&session.ExpiresAt,
			&session.Used,
			&completedAt,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning upload session: %w", err)
		}

		if completedAt.Valid {
			session.CompletedAt = &completedAt.Time
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upload sessions: %w", err)
	}
	return sessions, nil
}

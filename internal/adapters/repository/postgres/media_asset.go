package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlMediaAssetRepository struct {
	db SQLQuerier
}

// NewSQLMediaAssetRepository creates sqlMediaAssetRepository that implements port.MediaAssetRepository
func NewSQLMediaAssetRepository(db SQLQuerier) port.MediaAssetRepository {
	return &sqlMediaAssetRepository{
		db: db,
	}
}

const assetColumns = `id, external_id, owner_id, course_id, lecture_id, filename,
                      content_type, size_bytes, category, status, extra, active,
                      created_at, updated_at`

// Create creates a new media asset record
func (s *sqlMediaAssetRepository) Create(ctx context.Context, asset domain.MediaAsset) error {
	query := `INSERT INTO media_assets (id, external_id, owner_id, course_id, lecture_id, filename,
                                        content_type, size_bytes, category, status, extra, active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	extra, err := marshalExtra(asset.Extra)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query,
		asset.ID, asset.ExternalID, asset.OwnerID, asset.CourseID, asset.LectureID,
		asset.Filename, asset.ContentType, asset.SizeBytes, asset.Category,
		asset.Status, extra, asset.Active,
	)
	if err != nil {
		return fmt.Errorf("error inserting media asset: %w", err)
	}
	return nil
}

// FindByID finds an active asset by id
func (s *sqlMediaAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error) {
	query := `SELECT ` + assetColumns + `
              FROM media_assets
              WHERE id = $1 AND active = true`

	asset, err := scanAsset(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}

// Advance conditionally moves the asset between statuses. It reports false
// when the asset is missing or its current status is not in from.
func (s *sqlMediaAssetRepository) Advance(ctx context.Context, id uuid.UUID, from []domain.AssetStatus, to domain.AssetStatus) (bool, error) {
	query := `UPDATE media_assets
              SET status = $1, updated_at = now()
              WHERE id = $2 AND status = ANY($3)`

	fromStr := make([]string, len(from))
	for i, st := range from {
		fromStr[i] = string(st)
	}

	result, err := s.db.ExecContext(ctx, query, to, id, pq.Array(fromStr))
	if err != nil {
		return false, fmt.Errorf("error advancing media asset status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

// SetExternalID records the provider-assigned asset id
func (s *sqlMediaAssetRepository) SetExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	query := `UPDATE media_assets
              SET external_id = $1, updated_at = now()
              WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, externalID, id)
	if err != nil {
		return fmt.Errorf("error setting external id: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// MergeExtra shallow-merges keys into the asset's extra document. Existing
// keys not present in extra are kept.
func (s *sqlMediaAssetRepository) MergeExtra(ctx context.Context, id uuid.UUID, extra map[string]any) error {
	if len(extra) == 0 {
		return nil
	}

	query := `UPDATE media_assets
              SET extra = extra || $1::jsonb, updated_at = now()
              WHERE id = $2`

	doc, err := marshalExtra(extra)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, doc, id)
	if err != nil {
		return fmt.Errorf("error merging asset extra: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// Deactivate soft deletes: the record survives for audit but stops
// resolving through FindByID.
func (s *sqlMediaAssetRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE media_assets
              SET active = false, status = $1, updated_at = now()
              WHERE id = $2 AND active = true`

	result, err := s.db.ExecContext(ctx, query, domain.AssetStatusDeleted, id)
	if err != nil {
		return fmt.Errorf("error deactivating media asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// Delete hard deletes the record. Used by the retention sweep only.
func (s *sqlMediaAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM media_assets WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting media asset: %w", err)
	}
	return nil
}

// FindStuck finds active assets sitting in processing since before
// olderThan. Uploading assets are excluded: until the provider converts
// the upload there is nothing to poll, and the session sweep settles the
// abandoned ones.
func (s *sqlMediaAssetRepository) FindStuck(ctx context.Context, olderThan time.Time) ([]domain.MediaAsset, error) {
	query := `SELECT ` + assetColumns + `
              FROM media_assets
              WHERE status = $1
                AND updated_at < $2
                AND active = true`

	return s.findAll(ctx, query, string(domain.AssetStatusProcessing), olderThan)
}

// FindCompletedSince finds assets that completed after since.
func (s *sqlMediaAssetRepository) FindCompletedSince(ctx context.Context, since time.Time) ([]domain.MediaAsset, error) {
	query := `SELECT ` + assetColumns + `
              FROM media_assets
              WHERE status = $1
                AND updated_at >= $2
                AND active = true`

	return s.findAll(ctx, query, domain.AssetStatusCompleted, since)
}

// FindFailedBefore finds failed or cancelled assets untouched since before.
// Inactive records are included so soft-deleted failures age out too.
func (s *sqlMediaAssetRepository) FindFailedBefore(ctx context.Context, before time.Time) ([]domain.MediaAsset, error) {
	query := `SELECT ` + assetColumns + `
              FROM media_assets
              WHERE status = ANY($1)
                AND updated_at < $2`

	statuses := []string{string(domain.AssetStatusFailed), string(domain.AssetStatusCancelled)}
	return s.findAll(ctx, query, pq.Array(statuses), before)
}

func (s *sqlMediaAssetRepository) findAll(ctx context.Context, query string, args ...any) ([]domain.MediaAsset, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying media assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.MediaAsset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning media asset: %w", err)
		}
		assets = append(assets, *asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media assets: %w", err)
	}
	return assets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*domain.MediaAsset, error) {
	var (
		a     domain.MediaAsset
		extra []byte
	)
	err := row.Scan(
		&a.ID,
		&a.ExternalID,
		&a.OwnerID,
		&a.CourseID,
		&a.LectureID,
		&a.Filename,
		&a.ContentType,
		&a.SizeBytes,
		&a.Category,
		&a.Status,
		&extra,
		&a.Active,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &a.Extra); err != nil {
			return nil, fmt.Errorf("error decoding asset extra: %w", err)
		}
	}
	return &a, nil
}

func marshalExtra(extra map[string]any) ([]byte, error) {
	if extra == nil {
		extra = map[string]any{}
	}
	doc, err := json.Marshal(extra)
	if err != nil {
		return nil, fmt.Errorf("error encoding asset extra: %w", err)
	}
	return doc, nil
}

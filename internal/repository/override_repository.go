package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sekolah-branding/internal/domain"
)

type OverrideRepository interface {
	Load(ctx context.Context, tenantID uuid.UUID, locale string) ([]domain.OverrideRecord, error)
	Add(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, overrides map[string]string) error
	Remove(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, keys []string) error
}

type overrideRepository struct {
	db *sqlx.DB
}

func NewOverrideRepository(db *sqlx.DB) OverrideRepository {
	return &overrideRepository{db: db}
}

func (r *overrideRepository) Load(ctx context.Context, tenantID uuid.UUID, locale string) ([]domain.OverrideRecord, error) {
	query := `
		SELECT * FROM override_records
		WHERE tenant_id = $1 AND locale = $2
		ORDER BY created_at`

	var records []domain.OverrideRecord
	err := r.db.SelectContext(ctx, &records, query, tenantID, locale)
	return records, err
}

func (r *overrideRepository) Add(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, overrides map[string]string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO override_records (id, tenant_id, locale, key, value, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id, locale, key, priority)
		DO UPDATE SET value = EXCLUDED.value, created_at = NOW()`

	for key, value := range overrides {
		if _, err := tx.ExecContext(ctx, query,
			uuid.New(), tenantID, locale, key, value, priority,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Remove deletes override rows for the given keys. Absent keys are not
// an error; removal only narrows the contributing set.
func (r *overrideRepository) Remove(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	query := `
		DELETE FROM override_records
		WHERE tenant_id = $1 AND locale = $2 AND priority = $3 AND key = ANY($4)`

	_, err := r.db.ExecContext(ctx, query, tenantID, locale, priority, pq.Array(keys))
	return err
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sekolah-branding/internal/domain"
)

type TranslationRepository interface {
	Load(ctx context.Context, tenantID uuid.UUID, locale string) ([]domain.TranslationEntry, error)
	Save(ctx context.Context, tenantID uuid.UUID, locale string, entries []domain.TranslationEntry) error
	CountKeys(ctx context.Context, tenantID uuid.UUID, locale string) (int64, error)
}

type translationRepository struct {
	db *sqlx.DB
}

func NewTranslationRepository(db *sqlx.DB) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Load(ctx context.Context, tenantID uuid.UUID, locale string) ([]domain.TranslationEntry, error) {
	query := `
		SELECT * FROM translation_entries
		WHERE tenant_id = $1 AND locale = $2
		ORDER BY key`

	var entries []domain.TranslationEntry
	err := r.db.SelectContext(ctx, &entries, query, tenantID, locale)
	return entries, err
}

func (r *translationRepository) Save(ctx context.Context, tenantID uuid.UUID, locale string, entries []domain.TranslationEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO translation_entries (id, tenant_id, locale, key, value, is_message_format, is_blank)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, locale, key)
		DO UPDATE SET value = EXCLUDED.value,
			is_message_format = EXCLUDED.is_message_format,
			is_blank = EXCLUDED.is_blank,
			updated_at = NOW()`

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, query,
			uuid.New(), tenantID, locale, e.Key, e.Value, e.IsMessageFormat, e.IsBlank,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *translationRepository) CountKeys(ctx context.Context, tenantID uuid.UUID, locale string) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM translation_entries WHERE tenant_id = $1 AND locale = $2`
	err := r.db.GetContext(ctx, &total, query, tenantID, locale)
	return total, err
}

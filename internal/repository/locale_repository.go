package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sekolah-branding/internal/domain"
)

type LocaleRepository interface {
	Create(ctx context.Context, locale *domain.Locale) error
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Locale, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Locale, error)
}

type localeRepository struct {
	db *sqlx.DB
}

func NewLocaleRepository(db *sqlx.DB) LocaleRepository {
	return &localeRepository{db: db}
}

func (r *localeRepository) Create(ctx context.Context, locale *domain.Locale) error {
	query := `
		INSERT INTO locales (id, tenant_id, code, display_name, native_name, direction)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		locale.ID, locale.TenantID, locale.Code, locale.DisplayName,
		locale.NativeName, locale.Direction,
	).Scan(&locale.CreatedAt)
}

func (r *localeRepository) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Locale, error) {
	var locale domain.Locale
	query := `SELECT * FROM locales WHERE tenant_id = $1 AND code = $2`

	err := r.db.GetContext(ctx, &locale, query, tenantID, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &locale, nil
}

func (r *localeRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Locale, error) {
	query := `SELECT * FROM locales WHERE tenant_id = $1 ORDER BY code`

	var locales []domain.Locale
	err := r.db.SelectContext(ctx, &locales, query, tenantID)
	return locales, err
}

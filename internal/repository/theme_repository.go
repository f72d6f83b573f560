package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sekolah-branding/internal/domain"
)

type ThemeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ThemeConfig, error)
	Save(ctx context.Context, theme *domain.ThemeConfig) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemeConfig, error)
}

type themeRepository struct {
	db *sqlx.DB
}

func NewThemeRepository(db *sqlx.DB) ThemeRepository {
	return &themeRepository{db: db}
}

// themeRow carries the jsonb columns as raw bytes; decoding also
// upgrades legacy version 1 palettes.
type themeRow struct {
	ID         string          `db:"id"`
	TenantID   *uuid.UUID      `db:"tenant_id"`
	Name       string          `db:"name"`
	Version    int             `db:"version"`
	Extends    *string         `db:"extends"`
	Palette    json.RawMessage `db:"palette"`
	Typography json.RawMessage `db:"typography"`
	Components json.RawMessage `db:"components"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (row *themeRow) toDomain() (*domain.ThemeConfig, error) {
	theme := &domain.ThemeConfig{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Name:      row.Name,
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Extends != nil {
		theme.Extends = *row.Extends
	}

	palette, err := domain.UpgradePalette(row.Palette)
	if err != nil {
		return nil, err
	}
	theme.Palette = palette
	if theme.Version < domain.CurrentThemeVersion {
		theme.Version = domain.CurrentThemeVersion
	}

	if len(row.Typography) > 0 {
		if err := json.Unmarshal(row.Typography, &theme.Typography); err != nil {
			return nil, err
		}
	}
	if len(row.Components) > 0 {
		if err := json.Unmarshal(row.Components, &theme.Components); err != nil {
			return nil, err
		}
	}

	return theme, nil
}

func (r *themeRepository) GetByID(ctx context.Context, id string) (*domain.ThemeConfig, error) {
	var row themeRow
	query := `SELECT * FROM themes WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}

func (r *themeRepository) Save(ctx context.Context, theme *domain.ThemeConfig) error {
	palette, err := json.Marshal(theme.Palette)
	if err != nil {
		return err
	}
	typography, err := json.Marshal(theme.Typography)
	if err != nil {
		return err
	}
	components, err := json.Marshal(theme.Components)
	if err != nil {
		return err
	}

	var extends *string
	if theme.Extends != "" {
		extends = &theme.Extends
	}

	query := `
		INSERT INTO themes (id, tenant_id, name, version, extends, palette, typography, components)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name,
			version = EXCLUDED.version,
			extends = EXCLUDED.extends,
			palette = EXCLUDED.palette,
			typography = EXCLUDED.typography,
			components = EXCLUDED.components,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		theme.ID, theme.TenantID, theme.Name, theme.Version, extends,
		palette, typography, components,
	).Scan(&theme.CreatedAt, &theme.UpdatedAt)
}

func (r *themeRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemeConfig, error) {
	var rows []themeRow
	query := `SELECT * FROM themes WHERE tenant_id = $1 OR tenant_id IS NULL ORDER BY id`

	if err := r.db.SelectContext(ctx, &rows, query, tenantID); err != nil {
		return nil, err
	}

	themes := make([]domain.ThemeConfig, 0, len(rows))
	for i := range rows {
		theme, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		themes = append(themes, *theme)
	}
	return themes, nil
}

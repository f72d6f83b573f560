package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sekolah-branding/internal/domain"
)

type ThemeRepository struct {
	mock.Mock
}

func (m *ThemeRepository) GetByID(ctx context.Context, id string) (*domain.ThemeConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThemeConfig), args.Error(1)
}

func (m *ThemeRepository) Save(ctx context.Context, theme *domain.ThemeConfig) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *ThemeRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemeConfig, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ThemeConfig), args.Error(1)
}

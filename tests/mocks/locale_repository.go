package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sekolah-branding/internal/domain"
)

type LocaleRepository struct {
	mock.Mock
}

func (m *LocaleRepository) Create(ctx context.Context, locale *domain.Locale) error {
	args := m.Called(ctx, locale)
	return args.Error(0)
}

func (m *LocaleRepository) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Locale, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locale), args.Error(1)
}

func (m *LocaleRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Locale, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Locale), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sekolah-branding/internal/domain"
)

type OverrideRepository struct {
	mock.Mock
}

func (m *OverrideRepository) Load(ctx context.Context, tenantID uuid.UUID, locale string) ([]domain.OverrideRecord, error) {
	args := m.Called(ctx, tenantID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverrideRecord), args.Error(1)
}

func (m *OverrideRepository) Add(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, overrides map[string]string) error {
	args := m.Called(ctx, tenantID, locale, priority, overrides)
	return args.Error(0)
}

func (m *OverrideRepository) Remove(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, keys []string) error {
	args := m.Called(ctx, tenantID, locale, priority, keys)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sekolah-branding/internal/domain"
)

type TranslationRepository struct {
	mock.Mock
}

func (m *TranslationRepository) Load(ctx context.Context, tenantID uuid.UUID, locale string) ([]domain.TranslationEntry, error) {
	args := m.Called(ctx, tenantID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TranslationEntry), args.Error(1)
}

func (m *TranslationRepository) Save(ctx context.Context, tenantID uuid.UUID, locale string, entries []domain.TranslationEntry) error {
	args := m.Called(ctx, tenantID, locale, entries)
	return args.Error(0)
}

func (m *TranslationRepository) CountKeys(ctx context.Context, tenantID uuid.UUID, locale string) (int64, error) {
	args := m.Called(ctx, tenantID, locale)
	return args.Get(0).(int64), args.Error(1)
}

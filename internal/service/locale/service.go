package locale

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/repository"
)

// Accepted code shapes: "xx" or "xx-YY". Anything fancier (scripts,
// variants) is rejected before it can leak into cache keys.
var codeRe = regexp.MustCompile(`^[a-z]{2,3}(-[A-Z]{2})?$`)

type Service interface {
	Register(ctx context.Context, tenantID uuid.UUID, input domain.RegisterLocaleInput) (*domain.Locale, error)
	Get(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Locale, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Locale, error)
}

type service struct {
	localeRepo repository.LocaleRepository
}

func NewService(localeRepo repository.LocaleRepository) Service {
	return &service{localeRepo: localeRepo}
}

// Register adds a locale for a tenant. Locales are immutable once
// registered: re-registering with identical metadata is a no-op,
// conflicting metadata is a validation error.
func (s *service) Register(ctx context.Context, tenantID uuid.UUID, input domain.RegisterLocaleInput) (*domain.Locale, error) {
	if !codeRe.MatchString(input.Code) {
		return nil, domain.NewValidationError("code", "locale code must look like \"xx\" or \"xx-YY\"")
	}
	if _, err := language.Parse(input.Code); err != nil {
		return nil, domain.NewValidationError("code", "not a well-formed language tag")
	}
	if input.DisplayName == "" {
		return nil, domain.NewValidationError("display_name", "must not be empty")
	}
	if input.Direction != nil && *input.Direction != domain.DirectionLTR && *input.Direction != domain.DirectionRTL {
		return nil, domain.NewValidationError("direction", "must be ltr or rtl")
	}

	existing, err := s.localeRepo.GetByCode(ctx, tenantID, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.DisplayName == input.DisplayName && existing.NativeName == input.NativeName && directionEqual(existing.Direction, input.Direction) {
			return existing, nil
		}
		return nil, domain.NewValidationError("code", "locale already registered with different metadata")
	}

	// Direction is stored only when the caller set it explicitly;
	// otherwise it stays a pure function of the code.
	loc := &domain.Locale{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Code:        input.Code,
		DisplayName: input.DisplayName,
		NativeName:  input.NativeName,
		Direction:   input.Direction,
	}
	if err := s.localeRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *service) Get(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Locale, error) {
	loc, err := s.localeRepo.GetByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrLocaleNotFound
	}
	return loc, nil
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Locale, error) {
	return s.localeRepo.ListByTenant(ctx, tenantID)
}

func directionEqual(a, b *domain.Direction) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

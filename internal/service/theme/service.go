package theme

import (
	"context"

	"github.com/google/uuid"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/pkg/rescache"
	"sekolah-branding/internal/repository"
)

type Service interface {
	Get(ctx context.Context, themeID string) (*domain.ThemeConfig, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemeConfig, error)
	Save(ctx context.Context, theme *domain.ThemeConfig) (*domain.ThemeValidationReport, error)
	Compose(ctx context.Context, tenantID uuid.UUID, baseThemeID string, customizations *domain.ThemeConfig) (*domain.ThemeConfig, error)
	Validate(theme *domain.ThemeConfig) *domain.ThemeValidationReport
}

type service struct {
	themeRepo    repository.ThemeRepository
	cache        *rescache.Cache
	extendsDepth int
}

func NewService(themeRepo repository.ThemeRepository, cache *rescache.Cache, extendsDepth int) Service {
	if extendsDepth <= 0 {
		extendsDepth = 10
	}
	return &service{
		themeRepo:    themeRepo,
		cache:        cache,
		extendsDepth: extendsDepth,
	}
}

func cacheScope(themeID string) string {
	return "theme|" + themeID
}

func (s *service) Get(ctx context.Context, themeID string) (*domain.ThemeConfig, error) {
	theme, err := s.themeRepo.GetByID(ctx, themeID)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, domain.ErrThemeNotFound
	}
	return theme, nil
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemeConfig, error) {
	return s.themeRepo.ListByTenant(ctx, tenantID)
}

// Save validates first and persists only when no errors were found.
// Rejecting on errors (not warnings) is this service's policy; the
// validator itself only reports.
func (s *service) Save(ctx context.Context, theme *domain.ThemeConfig) (*domain.ThemeValidationReport, error) {
	report := s.Validate(theme)
	if !report.IsValid {
		return report, domain.NewValidationError("theme", "theme failed validation")
	}

	if theme.Extends != "" {
		// Reject cycles at write time as well; a theme must never
		// transitively extend itself.
		if _, err := s.resolveChain(ctx, theme.Extends, map[string]bool{theme.ID: true}, 1); err != nil {
			return report, err
		}
	}

	theme.Version = domain.CurrentThemeVersion
	if err := s.themeRepo.Save(ctx, theme); err != nil {
		return report, err
	}

	// Children that extend this theme recompose lazily on their own
	// cache TTL; only this theme's compiled form is dropped eagerly.
	s.cache.Invalidate(cacheScope(theme.ID))
	return report, nil
}

// Compose resolves the extends chain of baseThemeID parent-first, then
// applies tenant customizations as the final highest-precedence layer.
func (s *service) Compose(ctx context.Context, tenantID uuid.UUID, baseThemeID string, customizations *domain.ThemeConfig) (*domain.ThemeConfig, error) {
	value, err := s.cache.GetOrCompute(ctx, cacheScope(baseThemeID), "composed", func(ctx context.Context) (any, error) {
		return s.resolveChain(ctx, baseThemeID, map[string]bool{}, 0)
	})
	if err != nil {
		return nil, err
	}
	base := value.(*domain.ThemeConfig)

	composed := copyTheme(base)
	if customizations != nil {
		composed = mergeTheme(composed, customizations)
	}
	composed.TenantID = &tenantID
	return composed, nil
}

func (s *service) resolveChain(ctx context.Context, themeID string, visited map[string]bool, depth int) (*domain.ThemeConfig, error) {
	if visited[themeID] {
		return nil, domain.NewValidationError("extends", "cyclic theme extension involving "+themeID)
	}
	if depth > s.extendsDepth {
		return nil, domain.NewValidationError("extends", "theme extension chain too deep")
	}
	visited[themeID] = true

	theme, err := s.themeRepo.GetByID(ctx, themeID)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, domain.ErrThemeNotFound
	}

	if theme.Extends == "" {
		return copyTheme(theme), nil
	}

	parent, err := s.resolveChain(ctx, theme.Extends, visited, depth+1)
	if err != nil {
		return nil, err
	}

	merged := mergeTheme(parent, theme)
	merged.ID = theme.ID
	merged.Name = theme.Name
	merged.Extends = theme.Extends
	return merged, nil
}

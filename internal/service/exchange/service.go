// Package exchange moves translation maps across the supported
// interchange formats. Import goes through the resolution engine so
// validation and cache invalidation behave exactly like a direct
// update.
package exchange

import (
	"context"

	"github.com/google/uuid"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/service/resolver"
)

type Service interface {
	Export(ctx context.Context, tenantID uuid.UUID, locale, format string) ([]byte, string, error)
	Import(ctx context.Context, tenantID uuid.UUID, locale, format string, content []byte) (*domain.UpdateResult, error)
}

type service struct {
	resolver resolver.Service
}

func NewService(resolverService resolver.Service) Service {
	return &service{resolver: resolverService}
}

// Export serializes the fully resolved map (base plus overrides) and
// returns the payload with its content type.
func (s *service) Export(ctx context.Context, tenantID uuid.UUID, locale, format string) ([]byte, string, error) {
	resolved, err := s.resolver.GetTranslations(ctx, tenantID, locale, domain.ResolveOptions{DisableFallback: true})
	if err != nil {
		return nil, "", err
	}

	switch format {
	case FormatKeyValue:
		out, err := encodeKeyValue(resolved)
		return out, "application/json", err
	case FormatGettext:
		out, err := encodeGettext(resolved)
		return out, "text/x-gettext-translation", err
	case FormatXLIFF:
		out, err := encodeXLIFF(resolved)
		return out, "application/xml", err
	}
	return nil, "", domain.NewValidationError("format", "unsupported format "+format)
}

func (s *service) Import(ctx context.Context, tenantID uuid.UUID, locale, format string, content []byte) (*domain.UpdateResult, error) {
	var (
		m   map[string]string
		err error
	)
	switch format {
	case FormatKeyValue:
		m, err = decodeKeyValue(content)
	case FormatGettext:
		m, err = decodeGettext(content)
	case FormatXLIFF:
		m, err = decodeXLIFF(content)
	default:
		return nil, domain.NewValidationError("format", "unsupported format "+format)
	}
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, domain.NewValidationError("content", "no translation entries found")
	}

	entries := make([]domain.TranslationInput, 0, len(m))
	for key, value := range m {
		entries = append(entries, domain.TranslationInput{Key: key, Value: value})
	}
	return s.resolver.UpdateTranslationKeys(ctx, tenantID, locale, entries)
}

package resolver

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/pkg/fallback"
	"sekolah-branding/internal/pkg/messageformat"
	"sekolah-branding/internal/pkg/rescache"
	"sekolah-branding/internal/repository"
)

type Service interface {
	GetTranslations(ctx context.Context, tenantID uuid.UUID, locale string, opts domain.ResolveOptions) (map[string]string, error)
	Translate(ctx context.Context, tenantID uuid.UUID, locale, key string, values map[string]any, opts domain.FormatOptions) (string, error)
	UpdateTranslationKeys(ctx context.Context, tenantID uuid.UUID, locale string, entries []domain.TranslationInput) (*domain.UpdateResult, error)
	AddOverrides(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, overrides map[string]string) error
	RemoveOverrides(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, keys []string) error
	GetMissingTranslations(ctx context.Context, tenantID uuid.UUID, locale, referenceLocale string) ([]string, error)
	SeedTranslations(ctx context.Context, tenantID uuid.UUID, locale string, strings map[string]string) (*domain.UpdateResult, error)
}

type service struct {
	translationRepo repository.TranslationRepository
	overrideRepo    repository.OverrideRepository
	cache           *rescache.Cache
	formatter       *messageformat.Formatter
	defaultLocale   string
}

func NewService(translationRepo repository.TranslationRepository, overrideRepo repository.OverrideRepository, cache *rescache.Cache, defaultLocale string) Service {
	formatter := messageformat.New()
	formatter.OnMissingValue = func(pattern, name string) {
		log.Printf("messageformat: missing value %q for pattern %q", name, pattern)
	}
	formatter.OnFormatError = func(pattern string, err error) {
		log.Printf("messageformat: malformed pattern %q: %v", pattern, err)
	}

	return &service{
		translationRepo: translationRepo,
		overrideRepo:    overrideRepo,
		cache:           cache,
		formatter:       formatter,
		defaultLocale:   defaultLocale,
	}
}

// CacheScope is the invalidation unit for one (tenant, locale)
// partition. A write to any variant of the partition drops them all.
func CacheScope(tenantID uuid.UUID, locale string) string {
	return "translations|" + tenantID.String() + "|" + locale
}

func (s *service) GetTranslations(ctx context.Context, tenantID uuid.UUID, locale string, opts domain.ResolveOptions) (map[string]string, error) {
	resolved, err := s.resolve(ctx, tenantID, locale, opts)
	if err != nil {
		return nil, err
	}

	// Defensive copy: callers never share the cached map.
	out := make(map[string]string, len(resolved))
	for k, v := range resolved {
		out[k] = v
	}
	return out, nil
}

func (s *service) resolve(ctx context.Context, tenantID uuid.UUID, locale string, opts domain.ResolveOptions) (map[string]string, error) {
	value, err := s.cache.GetOrCompute(ctx, CacheScope(tenantID, locale), opts.Hash(), func(ctx context.Context) (any, error) {
		return s.compute(ctx, tenantID, locale, opts)
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]string), nil
}

func (s *service) compute(ctx context.Context, tenantID uuid.UUID, locale string, opts domain.ResolveOptions) (map[string]string, error) {
	chain := fallback.Chain(locale, s.defaultLocale)
	if opts.DisableFallback {
		chain = chain[:1]
	}

	// Walk the chain furthest fallback first so closer locales
	// overwrite; fallbacks only ever fill gaps.
	resolved := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		entries, err := s.translationRepo.Load(ctx, tenantID, chain[i])
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsBlank && !opts.IncludeBlank {
				continue
			}
			resolved[e.Key] = e.Value
		}
	}

	// Overrides apply to the requested locale only, never to the
	// fallbacks it borrowed from.
	records, err := s.overrideRepo.Load(ctx, tenantID, locale)
	if err != nil {
		return nil, err
	}
	return applyOverrides(resolved, records), nil
}

// applyOverrides folds override tiers low, medium, high onto the base
// map, higher tiers winning by last-write overwrite. Within a tier the
// newest record for a key wins, so records are applied oldest first.
// It is pure: the input map is not modified.
func applyOverrides(base map[string]string, records []domain.OverrideRecord) map[string]string {
	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}

	byTier := make(map[domain.OverridePriority][]domain.OverrideRecord)
	for _, r := range records {
		byTier[r.Priority] = append(byTier[r.Priority], r)
	}

	for _, tier := range domain.PriorityTiers {
		tierRecords := byTier[tier]
		sort.SliceStable(tierRecords, func(i, j int) bool {
			return tierRecords[i].CreatedAt.Before(tierRecords[j].CreatedAt)
		})
		for _, r := range tierRecords {
			merged[r.Key] = r.Value
		}
	}

	return merged
}

func (s *service) Translate(ctx context.Context, tenantID uuid.UUID, locale, key string, values map[string]any, opts domain.FormatOptions) (string, error) {
	resolved, err := s.resolve(ctx, tenantID, locale, domain.ResolveOptions{IncludeBlank: true})
	if err != nil {
		return "", err
	}

	pattern, ok := resolved[key]
	if !ok {
		if opts.Required {
			return "", domain.ErrTranslationNotFound
		}
		// Untranslated UI renders the key name, never a blank string,
		// so a missing entry stays debuggable.
		return key, nil
	}

	if !messageformat.IsMessagePattern(pattern) {
		return pattern, nil
	}
	return s.formatter.Format(pattern, values, messageformat.Options{Raw: opts.Raw}), nil
}

func (s *service) UpdateTranslationKeys(ctx context.Context, tenantID uuid.UUID, locale string, entries []domain.TranslationInput) (*domain.UpdateResult, error) {
	if len(entries) == 0 {
		return nil, domain.NewValidationError("entries", "at least one entry is required")
	}

	// Validate everything before touching the store; a rejected request
	// is never partially applied.
	toSave := make([]domain.TranslationEntry, 0, len(entries))
	for _, in := range entries {
		if in.Key == "" {
			return nil, domain.NewValidationError("key", "must not be empty")
		}
		if in.Value == "" && !in.Blank {
			return nil, domain.NewValidationError(in.Key, "value must not be empty unless marked blank")
		}
		toSave = append(toSave, domain.TranslationEntry{
			TenantID:        tenantID,
			Locale:          locale,
			Key:             in.Key,
			Value:           in.Value,
			IsMessageFormat: messageformat.IsMessagePattern(in.Value),
			IsBlank:         in.Blank,
		})
	}

	if err := s.translationRepo.Save(ctx, tenantID, locale, toSave); err != nil {
		return nil, err
	}

	// The store write is complete; invalidation is synchronous with the
	// write so a subsequent read never observes stale data. Locales
	// that fall back to this one re-fetch lazily on their own TTL.
	s.cache.Invalidate(CacheScope(tenantID, locale))

	total, err := s.translationRepo.CountKeys(ctx, tenantID, locale)
	if err != nil {
		return nil, err
	}

	return &domain.UpdateResult{UpdatedKeys: len(toSave), TotalKeys: total}, nil
}

func (s *service) AddOverrides(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, overrides map[string]string) error {
	if len(overrides) == 0 {
		return domain.NewValidationError("overrides", "at least one override is required")
	}
	for key, value := range overrides {
		if key == "" {
			return domain.NewValidationError("key", "must not be empty")
		}
		if value == "" {
			return domain.NewValidationError(key, "override value must not be empty")
		}
	}

	if err := s.overrideRepo.Add(ctx, tenantID, locale, priority, overrides); err != nil {
		return err
	}

	s.cache.Invalidate(CacheScope(tenantID, locale))
	return nil
}

func (s *service) RemoveOverrides(ctx context.Context, tenantID uuid.UUID, locale string, priority domain.OverridePriority, keys []string) error {
	if err := s.overrideRepo.Remove(ctx, tenantID, locale, priority, keys); err != nil {
		return err
	}

	s.cache.Invalidate(CacheScope(tenantID, locale))
	return nil
}

func (s *service) GetMissingTranslations(ctx context.Context, tenantID uuid.UUID, locale, referenceLocale string) ([]string, error) {
	reference, err := s.resolve(ctx, tenantID, referenceLocale, domain.ResolveOptions{})
	if err != nil {
		return nil, err
	}
	current, err := s.resolve(ctx, tenantID, locale, domain.ResolveOptions{DisableFallback: true})
	if err != nil {
		return nil, err
	}

	var missing []string
	for key := range reference {
		if current[key] == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing, nil
}

// SeedTranslations fills only the keys a locale does not have yet; it
// backs the boot-time catalog import and never clobbers tenant edits.
func (s *service) SeedTranslations(ctx context.Context, tenantID uuid.UUID, locale string, strings map[string]string) (*domain.UpdateResult, error) {
	existing, err := s.translationRepo.Load(ctx, tenantID, locale)
	if err != nil {
		return nil, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		have[e.Key] = struct{}{}
	}

	entries := make([]domain.TranslationInput, 0, len(strings))
	for key, value := range strings {
		if _, ok := have[key]; ok || value == "" {
			continue
		}
		entries = append(entries, domain.TranslationInput{Key: key, Value: value})
	}
	if len(entries) == 0 {
		total, err := s.translationRepo.CountKeys(ctx, tenantID, locale)
		if err != nil {
			return nil, err
		}
		return &domain.UpdateResult{UpdatedKeys: 0, TotalKeys: total}, nil
	}

	return s.UpdateTranslationKeys(ctx, tenantID, locale, entries)
}

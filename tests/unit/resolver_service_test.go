package unit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/pkg/rescache"
	"sekolah-branding/internal/service/resolver"
	"sekolah-branding/tests/mocks"
)

func entry(key, value string) domain.TranslationEntry {
	return domain.TranslationEntry{Key: key, Value: value}
}

func override(key, value string, priority domain.OverridePriority, createdAt time.Time) domain.OverrideRecord {
	return domain.OverrideRecord{
		ID:        uuid.New(),
		Key:       key,
		Value:     value,
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

func newResolver(trans *mocks.TranslationRepository, over *mocks.OverrideRepository) resolver.Service {
	return resolver.NewService(trans, over, rescache.New(time.Minute), "en")
}

func TestResolver_FallbackChain(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()

	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{
		entry("forms.save", "Save"),
		entry("forms.cancel", "Cancel"),
		entry("only.en", "English only"),
	}, nil)
	mockTrans.On("Load", ctx, tenantID, "es").Return([]domain.TranslationEntry{
		entry("forms.save", "Guardar"),
		entry("forms.cancel", "Cancelar"),
	}, nil)
	mockTrans.On("Load", ctx, tenantID, "es-MX").Return([]domain.TranslationEntry{
		entry("forms.save", "Guardar (MX)"),
	}, nil)
	mockOver.On("Load", ctx, tenantID, "es-MX").Return([]domain.OverrideRecord{}, nil)

	result, err := svc.GetTranslations(ctx, tenantID, "es-MX", domain.ResolveOptions{})

	assert.NoError(t, err)
	assert.Equal(t, "Guardar (MX)", result["forms.save"], "most specific locale wins")
	assert.Equal(t, "Cancelar", result["forms.cancel"], "bare language fills the gap")
	assert.Equal(t, "English only", result["only.en"], "default locale fills remaining gaps")
}

func TestResolver_OverridePrecedence(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()
	now := time.Now()

	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{
		entry("forms.save", "Save"),
	}, nil)
	mockTrans.On("Load", ctx, tenantID, "es").Return([]domain.TranslationEntry{}, nil)

	mockOver.On("Load", ctx, tenantID, "es").Return([]domain.OverrideRecord{
		override("forms.save", "Guardar", domain.PriorityLow, now),
		override("forms.save", "Guardar cambios", domain.PriorityHigh, now),
	}, nil).Once()

	result, err := svc.GetTranslations(ctx, tenantID, "es", domain.ResolveOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "Guardar cambios", result["forms.save"], "high tier wins over low")

	// Removing the high override falls back to low, not to the base.
	mockOver.On("Remove", ctx, tenantID, "es", domain.PriorityHigh, []string{"forms.save"}).Return(nil).Once()
	mockOver.On("Load", ctx, tenantID, "es").Return([]domain.OverrideRecord{
		override("forms.save", "Guardar", domain.PriorityLow, now),
	}, nil).Once()

	err = svc.RemoveOverrides(ctx, tenantID, "es", domain.PriorityHigh, []string{"forms.save"})
	assert.NoError(t, err)

	result, err = svc.GetTranslations(ctx, tenantID, "es", domain.ResolveOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "Guardar", result["forms.save"])

	mockOver.AssertExpectations(t)
}

func TestResolver_NewestWinsWithinTier(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()
	now := time.Now()

	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{}, nil)
	mockOver.On("Load", ctx, tenantID, "en").Return([]domain.OverrideRecord{
		override("title", "Newest", domain.PriorityMedium, now),
		override("title", "Older", domain.PriorityMedium, now.Add(-time.Hour)),
	}, nil)

	result, err := svc.GetTranslations(ctx, tenantID, "en", domain.ResolveOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "Newest", result["title"])
}

func TestResolver_IdempotentWithinTTL(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()

	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{
		entry("a", "1"),
	}, nil).Once()
	mockOver.On("Load", ctx, tenantID, "en").Return([]domain.OverrideRecord{}, nil).Once()

	first, err := svc.GetTranslations(ctx, tenantID, "en", domain.ResolveOptions{})
	assert.NoError(t, err)
	second, err := svc.GetTranslations(ctx, tenantID, "en", domain.ResolveOptions{})
	assert.NoError(t, err)

	assert.Equal(t, first, second)

	// Defensive copies: mutating one result must not leak into another.
	first["a"] = "mutated"
	third, err := svc.GetTranslations(ctx, tenantID, "en", domain.ResolveOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "1", third["a"])

	mockTrans.AssertNumberOfCalls(t, "Load", 1)
}

func TestResolver_WriteThenRead(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()

	mockOver.On("Load", ctx, tenantID, "en").Return([]domain.OverrideRecord{}, nil)
	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{
		entry("x", "old"),
	}, nil).Once()

	result, err := svc.GetTranslations(ctx, tenantID, "en", domain.ResolveOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "old", result["x"])

	mockTrans.On("Save", ctx, tenantID, "en", mock.MatchedBy(func(entries []domain.TranslationEntry) bool {
		return len(entries) == 1 && entries[0].Key == "x" && entries[0].Value == "1"
	})).Return(nil).Once()
	mockTrans.On("CountKeys", ctx, tenantID, "en").Return(int64(1), nil).Once()
	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{
		entry("x", "1"),
	}, nil).Once()

	updated, err := svc.UpdateTranslationKeys(ctx, tenantID, "en", []domain.TranslationInput{{Key: "x", Value: "1"}})
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.UpdatedKeys)

	result, err = svc.GetTranslations(ctx, tenantID, "en", domain.ResolveOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "1", result["x"], "a read after a write must never observe stale data")

	mockTrans.AssertExpectations(t)
}

func TestResolver_UpdateValidation(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("Empty Value Rejected", func(t *testing.T) {
		_, err := svc.UpdateTranslationKeys(ctx, tenantID, "en", []domain.TranslationInput{
			{Key: "ok", Value: "fine"},
			{Key: "bad", Value: ""},
		})

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		mockTrans.AssertNotCalled(t, "Save")
	})

	t.Run("Intentional Blank Allowed", func(t *testing.T) {
		mockTrans.On("Save", ctx, tenantID, "en", mock.MatchedBy(func(entries []domain.TranslationEntry) bool {
			return len(entries) == 1 && entries[0].IsBlank
		})).Return(nil).Once()
		mockTrans.On("CountKeys", ctx, tenantID, "en").Return(int64(1), nil).Once()

		_, err := svc.UpdateTranslationKeys(ctx, tenantID, "en", []domain.TranslationInput{
			{Key: "footer.note", Value: "", Blank: true},
		})
		assert.NoError(t, err)
	})

	t.Run("Store Error Propagated", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		mockTrans.On("Save", ctx, tenantID, "en", mock.Anything).Return(storeErr).Once()

		_, err := svc.UpdateTranslationKeys(ctx, tenantID, "en", []domain.TranslationInput{
			{Key: "k", Value: "v"},
		})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestResolver_Translate(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()

	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{
		entry("greeting.welcome", "Welcome, {name}!"),
		entry("inbox.unread", "{count, plural, one{1 unread message} other{# unread messages}}"),
		entry("plain", "Just text"),
	}, nil)
	mockOver.On("Load", ctx, tenantID, "en").Return([]domain.OverrideRecord{}, nil)

	t.Run("Interpolation", func(t *testing.T) {
		out, err := svc.Translate(ctx, tenantID, "en", "greeting.welcome", map[string]any{"name": "Maria"}, domain.FormatOptions{})
		assert.NoError(t, err)
		assert.Equal(t, "Welcome, Maria!", out)
	})

	t.Run("Plural", func(t *testing.T) {
		out, err := svc.Translate(ctx, tenantID, "en", "inbox.unread", map[string]any{"count": 5}, domain.FormatOptions{})
		assert.NoError(t, err)
		assert.Equal(t, "5 unread messages", out)
	})

	t.Run("Plain Value Untouched", func(t *testing.T) {
		out, err := svc.Translate(ctx, tenantID, "en", "plain", nil, domain.FormatOptions{})
		assert.NoError(t, err)
		assert.Equal(t, "Just text", out)
	})

	t.Run("Missing Key Renders Key Name", func(t *testing.T) {
		out, err := svc.Translate(ctx, tenantID, "en", "does.not.exist", nil, domain.FormatOptions{})
		assert.NoError(t, err)
		assert.Equal(t, "does.not.exist", out, "untranslated UI must stay debuggable, never blank")
	})

	t.Run("Missing Key Required", func(t *testing.T) {
		_, err := svc.Translate(ctx, tenantID, "en", "does.not.exist", nil, domain.FormatOptions{Required: true})
		assert.ErrorIs(t, err, domain.ErrTranslationNotFound)
	})
}

func TestResolver_GetMissingTranslations(t *testing.T) {
	mockTrans := new(mocks.TranslationRepository)
	mockOver := new(mocks.OverrideRepository)
	svc := newResolver(mockTrans, mockOver)
	ctx := context.Background()
	tenantID := uuid.New()

	mockTrans.On("Load", ctx, tenantID, "en").Return([]domain.TranslationEntry{
		entry("a", "1"),
		entry("b", "2"),
		entry("c", "3"),
	}, nil)
	mockTrans.On("Load", ctx, tenantID, "es").Return([]domain.TranslationEntry{
		entry("b", "dos"),
	}, nil)
	mockOver.On("Load", ctx, tenantID, "en").Return([]domain.OverrideRecord{}, nil)
	mockOver.On("Load", ctx, tenantID, "es").Return([]domain.OverrideRecord{}, nil)

	missing, err := svc.GetMissingTranslations(ctx, tenantID, "es", "en")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, missing)
}

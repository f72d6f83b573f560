package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TranslationEntry struct {
	ID              uuid.UUID `json:"id" db:"id"`
	TenantID        uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Locale          string    `json:"locale" db:"locale"`
	Key             string    `json:"key" db:"key"`
	Value           string    `json:"value" db:"value"`
	IsMessageFormat bool      `json:"is_message_format" db:"is_message_format"`
	IsBlank         bool      `json:"is_blank" db:"is_blank"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// TranslationInput is one key update. An empty value is rejected unless
// Blank marks it as intentionally blank.
type TranslationInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Blank bool   `json:"blank,omitempty"`
}

type UpdateResult struct {
	UpdatedKeys int   `json:"updated_keys"`
	TotalKeys   int64 `json:"total_keys"`
}

// ResolveOptions alter how a (tenant, locale) map is resolved. The hash
// is part of the cache key so distinct option sets never collide.
type ResolveOptions struct {
	DisableFallback bool `json:"disable_fallback,omitempty"`
	IncludeBlank    bool `json:"include_blank,omitempty"`
}

func (o ResolveOptions) Hash() string {
	return fmt.Sprintf("df=%t;ib=%t", o.DisableFallback, o.IncludeBlank)
}

// FormatOptions alter single-key resolution and formatting.
type FormatOptions struct {
	// Raw disables HTML escaping of substituted values.
	Raw bool `json:"raw,omitempty"`
	// Required surfaces a not-found error instead of rendering the key
	// name when the whole fallback chain has no value.
	Required bool `json:"required,omitempty"`
}

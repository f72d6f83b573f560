package domain

import (
	"time"

	"github.com/google/uuid"
)

type OverridePriority string

const (
	PriorityLow    OverridePriority = "low"
	PriorityMedium OverridePriority = "medium"
	PriorityHigh   OverridePriority = "high"
)

// PriorityTiers is the fold order for override composition. Later tiers
// overwrite earlier ones, so high always wins.
var PriorityTiers = []OverridePriority{PriorityLow, PriorityMedium, PriorityHigh}

func ParsePriority(s string) (OverridePriority, error) {
	switch OverridePriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return OverridePriority(s), nil
	}
	return "", NewValidationError("priority", "must be one of low, medium, high")
}

// OverrideRecord shadows a base translation for one key at one priority
// tier. It never mutates the underlying TranslationEntry.
type OverrideRecord struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	TenantID  uuid.UUID        `json:"tenant_id" db:"tenant_id"`
	Locale    string           `json:"locale" db:"locale"`
	Key       string           `json:"key" db:"key"`
	Value     string           `json:"value" db:"value"`
	Priority  OverridePriority `json:"priority" db:"priority"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

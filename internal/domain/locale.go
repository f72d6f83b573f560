package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Languages written right to left. Direction is always derived from this
// set unless a locale was registered with an explicit direction.
var rtlLanguages = map[string]struct{}{
	"ar":  {},
	"he":  {},
	"fa":  {},
	"ur":  {},
	"ps":  {},
	"sd":  {},
	"ug":  {},
	"yi":  {},
	"dv":  {},
	"ckb": {},
}

type Locale struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	TenantID    uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	Code        string     `json:"code" db:"code"`
	DisplayName string     `json:"display_name" db:"display_name"`
	NativeName  string     `json:"native_name" db:"native_name"`
	Direction   *Direction `json:"-" db:"direction"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// EffectiveDirection returns the explicit direction when one was
// registered, otherwise the direction derived from the locale code.
func (l Locale) EffectiveDirection() Direction {
	if l.Direction != nil {
		return *l.Direction
	}
	return DirectionOf(l.Code)
}

type RegisterLocaleInput struct {
	Code        string     `json:"code"`
	DisplayName string     `json:"display_name"`
	NativeName  string     `json:"native_name"`
	Direction   *Direction `json:"direction,omitempty"`
}

type LocaleResponse struct {
	Locale
	EffectiveDirection Direction         `json:"direction"`
	DirectionalMapping map[string]string `json:"directional_mapping"`
}

// BaseLanguage strips the region subtag: "es-MX" -> "es".
func BaseLanguage(code string) string {
	if i := strings.Index(code, "-"); i > 0 {
		return code[:i]
	}
	return code
}

// DirectionOf derives writing direction from a locale code.
func DirectionOf(code string) Direction {
	if _, ok := rtlLanguages[strings.ToLower(BaseLanguage(code))]; ok {
		return DirectionRTL
	}
	return DirectionLTR
}

// DirectionalMapping returns the logical-to-physical CSS property table
// for a writing direction. Style application itself is the UI's concern.
func DirectionalMapping(dir Direction) map[string]string {
	if dir == DirectionRTL {
		return map[string]string{
			"start":          "right",
			"end":            "left",
			"margin-start":   "margin-right",
			"margin-end":     "margin-left",
			"padding-start":  "padding-right",
			"padding-end":    "padding-left",
			"border-start":   "border-right",
			"border-end":     "border-left",
			"text-align":     "right",
			"float":          "right",
		}
	}
	return map[string]string{
		"start":          "left",
		"end":            "right",
		"margin-start":   "margin-left",
		"margin-end":     "margin-right",
		"padding-start":  "padding-left",
		"padding-end":    "padding-right",
		"border-start":   "border-left",
		"border-end":     "border-right",
		"text-align":     "left",
		"float":          "left",
	}
}

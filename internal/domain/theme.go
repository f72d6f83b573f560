package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CurrentThemeVersion is the schema version written by this codebase.
// Version 1 themes stored palette colors as flat hex strings; they are
// upgraded to grouped colors on load.
const CurrentThemeVersion = 2

// ColorGroup holds one palette color with optional shades. Empty string
// means the shade is unset and inherits through composition.
type ColorGroup struct {
	Main         string `json:"main"`
	Light        string `json:"light,omitempty"`
	Dark         string `json:"dark,omitempty"`
	ContrastText string `json:"contrastText,omitempty"`
}

type TypeVariant struct {
	FontSize   float64 `json:"fontSize,omitempty"`
	FontWeight int     `json:"fontWeight,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`
}

type Typography struct {
	FontFamily string                 `json:"fontFamily,omitempty"`
	Variants   map[string]TypeVariant `json:"variants,omitempty"`
}

type ThemeConfig struct {
	ID         string                    `json:"id"`
	TenantID   *uuid.UUID                `json:"tenant_id,omitempty"`
	Name       string                    `json:"name"`
	Version    int                       `json:"version"`
	Extends    string                    `json:"extends,omitempty"`
	Palette    map[string]ColorGroup     `json:"palette,omitempty"`
	Typography Typography                `json:"typography,omitempty"`
	Components map[string]map[string]any `json:"components,omitempty"`
	CreatedAt  time.Time                 `json:"created_at,omitempty"`
	UpdatedAt  time.Time                 `json:"updated_at,omitempty"`
}

// UpgradePalette decodes a stored palette, accepting both the current
// grouped shape and the legacy version 1 flat hex-string shape.
func UpgradePalette(raw json.RawMessage) (map[string]ColorGroup, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var grouped map[string]ColorGroup
	if err := json.Unmarshal(raw, &grouped); err == nil {
		return grouped, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}

	grouped = make(map[string]ColorGroup, len(flat))
	for name, hex := range flat {
		grouped[name] = ColorGroup{Main: hex}
	}
	return grouped, nil
}

type IssueSeverity string

const (
	SeverityError    IssueSeverity = "error"
	SeverityCritical IssueSeverity = "critical"
	SeverityWarning  IssueSeverity = "warning"
)

type ThemeIssue struct {
	Code     string        `json:"code"`
	Severity IssueSeverity `json:"severity"`
	Path     string        `json:"path"`
	Message  string        `json:"message"`
}

type ThemeValidationReport struct {
	IsValid  bool         `json:"is_valid"`
	Errors   []ThemeIssue `json:"errors"`
	Warnings []ThemeIssue `json:"warnings"`
}

type ComposeThemeInput struct {
	Customizations *ThemeConfig `json:"customizations,omitempty"`
}

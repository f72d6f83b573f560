package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/pkg/contrast"
)

var themeIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Contrast thresholds. 4.5 is the WCAG AA floor for normal text; below
// 3.0 the pair fails even large-text requirements and the issue is
// escalated. Both severities are kept distinct on purpose.
const (
	contrastMinimum  = 4.5
	contrastCritical = 3.0
)

const minTouchTarget = 44.0

var webSafeFamilies = map[string]struct{}{
	"serif":      {},
	"sans-serif": {},
	"monospace":  {},
	"cursive":    {},
	"fantasy":    {},
	"system-ui":  {},
}

// Validate reports structural, color-format and accessibility issues.
// It never mutates the theme; whether errors block a save is the
// caller's policy.
func (s *service) Validate(theme *domain.ThemeConfig) *domain.ThemeValidationReport {
	report := &domain.ThemeValidationReport{
		Errors:   []domain.ThemeIssue{},
		Warnings: []domain.ThemeIssue{},
	}

	if theme.ID == "" {
		addError(report, "missing_id", "id", "theme id is required")
	} else if !themeIDRe.MatchString(theme.ID) {
		addError(report, "invalid_id", "id", "theme id may only contain letters, digits, underscore and hyphen")
	}
	if theme.Name == "" {
		addError(report, "missing_name", "name", "theme name is required")
	}

	validateColors(report, theme)
	validateContrast(report, theme)
	validateTypography(report, theme)
	validateComponents(report, theme)

	report.IsValid = len(report.Errors) == 0
	return report
}

func validateColors(report *domain.ThemeValidationReport, theme *domain.ThemeConfig) {
	for name, group := range theme.Palette {
		shades := map[string]string{
			"main":         group.Main,
			"light":        group.Light,
			"dark":         group.Dark,
			"contrastText": group.ContrastText,
		}
		for shade, value := range shades {
			if value == "" {
				continue
			}
			if !contrast.IsHex(value) {
				addError(report, "invalid_color", fmt.Sprintf("palette.%s.%s", name, shade),
					fmt.Sprintf("%q is not a 3- or 6-digit hex color", value))
			}
		}
	}
}

// validateContrast checks the designated foreground/background pairs:
// the text color against the background color, and every palette
// color's contrastText against its main shade.
func validateContrast(report *domain.ThemeValidationReport, theme *domain.ThemeConfig) {
	check := func(path, fg, bg string) {
		ratio, err := contrast.Ratio(fg, bg)
		if err != nil {
			// Color format errors are already reported separately.
			return
		}
		switch {
		case ratio < contrastCritical:
			report.Errors = append(report.Errors, domain.ThemeIssue{
				Code:     "contrast_critical",
				Severity: domain.SeverityCritical,
				Path:     path,
				Message:  fmt.Sprintf("contrast ratio %.2f is below %.1f", ratio, contrastCritical),
			})
		case ratio < contrastMinimum:
			addError(report, "contrast_low", path,
				fmt.Sprintf("contrast ratio %.2f is below %.1f", ratio, contrastMinimum))
		}
	}

	text, hasText := theme.Palette["text"]
	background, hasBackground := theme.Palette["background"]
	if hasText && hasBackground && text.Main != "" && background.Main != "" {
		check("palette.text.main/palette.background.main", text.Main, background.Main)
	}

	for name, group := range theme.Palette {
		if group.ContrastText != "" && group.Main != "" {
			check(fmt.Sprintf("palette.%s.contrastText/palette.%s.main", name, name), group.ContrastText, group.Main)
		}
	}
}

func validateTypography(report *domain.ThemeValidationReport, theme *domain.ThemeConfig) {
	for name, variant := range theme.Typography.Variants {
		if variant.FontSize == 0 {
			continue
		}
		if variant.FontSize < 12 {
			addWarning(report, "font_too_small", "typography.variants."+name,
				fmt.Sprintf("font size %.4gpx is below 12px", variant.FontSize))
		}
		if variant.FontSize > 48 {
			addWarning(report, "font_too_large", "typography.variants."+name,
				fmt.Sprintf("font size %.4gpx is above 48px", variant.FontSize))
		}
	}

	if family := theme.Typography.FontFamily; family != "" {
		parts := strings.Split(family, ",")
		last := strings.ToLower(strings.Trim(strings.TrimSpace(parts[len(parts)-1]), `'"`))
		if _, ok := webSafeFamilies[last]; !ok {
			addWarning(report, "missing_font_fallback", "typography.fontFamily",
				"font stack does not end in a web-safe family")
		}
	}
}

func validateComponents(report *domain.ThemeValidationReport, theme *domain.ThemeConfig) {
	for name, styles := range theme.Components {
		for _, prop := range []string{"minHeight", "minWidth"} {
			value, ok := styles[prop]
			if !ok {
				continue
			}
			size, ok := toPixels(value)
			if ok && size < minTouchTarget {
				addWarning(report, "touch_target_small", fmt.Sprintf("components.%s.%s", name, prop),
					fmt.Sprintf("%.4g is below the %.4g logical pixel touch target", size, minTouchTarget))
			}
		}
	}
}

func toPixels(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(n), "px"), 64)
		return parsed, err == nil
	}
	return 0, false
}

func addError(report *domain.ThemeValidationReport, code, path, message string) {
	report.Errors = append(report.Errors, domain.ThemeIssue{
		Code:     code,
		Severity: domain.SeverityError,
		Path:     path,
		Message:  message,
	})
}

func addWarning(report *domain.ThemeValidationReport, code, path, message string) {
	report.Warnings = append(report.Warnings, domain.ThemeIssue{
		Code:     code,
		Severity: domain.SeverityWarning,
		Path:     path,
		Message:  message,
	})
}

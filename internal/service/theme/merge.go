package theme

import "sekolah-branding/internal/domain"

// mergeTheme overlays child onto parent. Palette colors merge per
// sub-key (main/light/dark/contrastText individually), typography
// variants merge per field, components merge per style key. The inputs
// are not modified.
func mergeTheme(parent, child *domain.ThemeConfig) *domain.ThemeConfig {
	out := copyTheme(parent)

	for name, color := range child.Palette {
		if out.Palette == nil {
			out.Palette = make(map[string]domain.ColorGroup)
		}
		out.Palette[name] = mergeColor(out.Palette[name], color)
	}

	if child.Typography.FontFamily != "" {
		out.Typography.FontFamily = child.Typography.FontFamily
	}
	for name, variant := range child.Typography.Variants {
		if out.Typography.Variants == nil {
			out.Typography.Variants = make(map[string]domain.TypeVariant)
		}
		out.Typography.Variants[name] = mergeVariant(out.Typography.Variants[name], variant)
	}

	for name, styles := range child.Components {
		if out.Components == nil {
			out.Components = make(map[string]map[string]any)
		}
		merged, ok := out.Components[name]
		if !ok {
			merged = make(map[string]any, len(styles))
		}
		for k, v := range styles {
			merged[k] = v
		}
		out.Components[name] = merged
	}

	if child.Name != "" {
		out.Name = child.Name
	}
	if child.Version > out.Version {
		out.Version = child.Version
	}

	return out
}

func mergeColor(base, overlay domain.ColorGroup) domain.ColorGroup {
	if overlay.Main != "" {
		base.Main = overlay.Main
	}
	if overlay.Light != "" {
		base.Light = overlay.Light
	}
	if overlay.Dark != "" {
		base.Dark = overlay.Dark
	}
	if overlay.ContrastText != "" {
		base.ContrastText = overlay.ContrastText
	}
	return base
}

func mergeVariant(base, overlay domain.TypeVariant) domain.TypeVariant {
	if overlay.FontSize != 0 {
		base.FontSize = overlay.FontSize
	}
	if overlay.FontWeight != 0 {
		base.FontWeight = overlay.FontWeight
	}
	if overlay.LineHeight != 0 {
		base.LineHeight = overlay.LineHeight
	}
	return base
}

func copyTheme(t *domain.ThemeConfig) *domain.ThemeConfig {
	out := *t

	if t.Palette != nil {
		out.Palette = make(map[string]domain.ColorGroup, len(t.Palette))
		for k, v := range t.Palette {
			out.Palette[k] = v
		}
	}
	if t.Typography.Variants != nil {
		out.Typography.Variants = make(map[string]domain.TypeVariant, len(t.Typography.Variants))
		for k, v := range t.Typography.Variants {
			out.Typography.Variants[k] = v
		}
	}
	if t.Components != nil {
		out.Components = make(map[string]map[string]any, len(t.Components))
		for name, styles := range t.Components {
			copied := make(map[string]any, len(styles))
			for k, v := range styles {
				copied[k] = v
			}
			out.Components[name] = copied
		}
	}

	return &out
}

// Package contrast implements the WCAG relative-luminance contrast
// ratio used by theme validation.
package contrast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHex accepts #RGB and #RRGGBB and returns channels in [0,255].
func ParseHex(color string) (r, g, b uint8, err error) {
	if !strings.HasPrefix(color, "#") {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", color)
	}
	s := color[1:]
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", color)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", color)
	}
	return uint8(v >> 16), uint8(v >> 8 & 0xff), uint8(v & 0xff), nil
}

// IsHex reports whether a string is a #RGB or #RRGGBB color.
func IsHex(color string) bool {
	_, _, _, err := ParseHex(color)
	return err == nil
}

// Luminance computes WCAG relative luminance for a hex color. The
// channel linearization constants are externally specified and must not
// be tuned.
func Luminance(color string) (float64, error) {
	r, g, b, err := ParseHex(color)
	if err != nil {
		return 0, err
	}

	linear := func(c uint8) float64 {
		v := float64(c) / 255.0
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}

	return 0.2126*linear(r) + 0.7152*linear(g) + 0.0722*linear(b), nil
}

// Ratio returns the contrast ratio between two hex colors, always >= 1.
func Ratio(a, b string) (float64, error) {
	la, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return 0, err
	}

	lighter, darker := la, lb
	if lb > la {
		lighter, darker = lb, la
	}
	return (lighter + 0.05) / (darker + 0.05), nil
}

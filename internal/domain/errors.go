package domain

import (
	"errors"
	"fmt"
)

var (
	ErrLocaleNotFound      = errors.New("locale not found")
	ErrThemeNotFound       = errors.New("theme not found")
	ErrTranslationNotFound = errors.New("translation not found")
)

// ValidationError reports malformed input. It is always raised before
// any persistence, so a failed request is never partially applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

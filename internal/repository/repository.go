package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Translation TranslationRepository
	Override    OverrideRepository
	Theme       ThemeRepository
	Locale      LocaleRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Translation: NewTranslationRepository(db),
		Override:    NewOverrideRepository(db),
		Theme:       NewThemeRepository(db),
		Locale:      NewLocaleRepository(db),
	}
}

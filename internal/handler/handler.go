package handler

import "sekolah-branding/internal/service"

type Handlers struct {
	Translation *TranslationHandler
	Theme       *ThemeHandler
	Locale      *LocaleHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Translation: NewTranslationHandler(services.Resolver, services.Exchange),
		Theme:       NewThemeHandler(services.Theme),
		Locale:      NewLocaleHandler(services.Locale),
	}
}

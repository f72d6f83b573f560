package handler

import (
	"github.com/gofiber/fiber/v2"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/middleware"
	"sekolah-branding/internal/service/locale"
)

type LocaleHandler struct {
	localeService locale.Service
}

func NewLocaleHandler(localeService locale.Service) *LocaleHandler {
	return &LocaleHandler{localeService: localeService}
}

func (h *LocaleHandler) List(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)

	locales, err := h.localeService.List(c.Context(), tenantID)
	if err != nil {
		return err
	}

	out := make([]domain.LocaleResponse, 0, len(locales))
	for _, l := range locales {
		out = append(out, toLocaleResponse(l))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"locales": out})
}

func (h *LocaleHandler) Get(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)

	l, err := h.localeService.Get(c.Context(), tenantID, c.Params("code"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(toLocaleResponse(*l))
}

func (h *LocaleHandler) Register(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)

	var input domain.RegisterLocaleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	l, err := h.localeService.Register(c.Context(), tenantID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toLocaleResponse(*l))
}

func toLocaleResponse(l domain.Locale) domain.LocaleResponse {
	dir := l.EffectiveDirection()
	return domain.LocaleResponse{
		Locale:             l,
		EffectiveDirection: dir,
		DirectionalMapping: domain.DirectionalMapping(dir),
	}
}

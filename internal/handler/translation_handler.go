package handler

import (
	"github.com/gofiber/fiber/v2"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/middleware"
	"sekolah-branding/internal/service/exchange"
	"sekolah-branding/internal/service/resolver"
)

type TranslationHandler struct {
	resolverService resolver.Service
	exchangeService exchange.Service
}

func NewTranslationHandler(resolverService resolver.Service, exchangeService exchange.Service) *TranslationHandler {
	return &TranslationHandler{
		resolverService: resolverService,
		exchangeService: exchangeService,
	}
}

func (h *TranslationHandler) Get(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")

	opts := domain.ResolveOptions{
		DisableFallback: c.QueryBool("no_fallback"),
		IncludeBlank:    c.QueryBool("include_blank"),
	}

	translations, err := h.resolverService.GetTranslations(c.Context(), tenantID, locale, opts)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"locale":       locale,
		"translations": translations,
	})
}

type resolveRequest struct {
	Values   map[string]any `json:"values"`
	Raw      bool           `json:"raw"`
	Required bool           `json:"required"`
}

func (h *TranslationHandler) Resolve(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")
	key := c.Params("key")

	var req resolveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	value, err := h.resolverService.Translate(c.Context(), tenantID, locale, key,
		req.Values, domain.FormatOptions{Raw: req.Raw, Required: req.Required})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"key": key, "value": value})
}

type updateTranslationsRequest struct {
	Entries []domain.TranslationInput `json:"entries"`
}

func (h *TranslationHandler) Update(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")

	var req updateTranslationsRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.resolverService.UpdateTranslationKeys(c.Context(), tenantID, locale, req.Entries)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *TranslationHandler) Missing(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")

	reference := c.Query("reference")
	if reference == "" {
		return middleware.BadRequest("reference query parameter is required")
	}

	missing, err := h.resolverService.GetMissingTranslations(c.Context(), tenantID, locale, reference)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"locale":    locale,
		"reference": reference,
		"missing":   missing,
	})
}

type overridesRequest struct {
	Overrides map[string]string `json:"overrides"`
}

func (h *TranslationHandler) AddOverrides(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")

	priority, err := domain.ParsePriority(c.Params("priority"))
	if err != nil {
		return err
	}

	var req overridesRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.resolverService.AddOverrides(c.Context(), tenantID, locale, priority, req.Overrides); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"added": len(req.Overrides)})
}

type removeOverridesRequest struct {
	Keys []string `json:"keys"`
}

func (h *TranslationHandler) RemoveOverrides(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")

	priority, err := domain.ParsePriority(c.Params("priority"))
	if err != nil {
		return err
	}

	var req removeOverridesRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.resolverService.RemoveOverrides(c.Context(), tenantID, locale, priority, req.Keys); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"removed": len(req.Keys)})
}

func (h *TranslationHandler) Export(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")
	format := c.Query("format", exchange.FormatKeyValue)

	payload, contentType, err := h.exchangeService.Export(c.Context(), tenantID, locale, format)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(payload)
}

func (h *TranslationHandler) Import(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	locale := c.Params("locale")
	format := c.Query("format", exchange.FormatKeyValue)

	result, err := h.exchangeService.Import(c.Context(), tenantID, locale, format, c.Body())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

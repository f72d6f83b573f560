package handler

import (
	"github.com/gofiber/fiber/v2"

	"sekolah-branding/internal/domain"
	"sekolah-branding/internal/middleware"
	"sekolah-branding/internal/service/theme"
)

type ThemeHandler struct {
	themeService theme.Service
}

func NewThemeHandler(themeService theme.Service) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	result, err := h.themeService.Get(c.Context(), c.Params("themeId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ThemeHandler) List(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)

	themes, err := h.themeService.List(c.Context(), tenantID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"themes": themes})
}

func (h *ThemeHandler) Save(c *fiber.Ctx) error {
	var input domain.ThemeConfig
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	report, err := h.themeService.Save(c.Context(), &input)
	if err != nil {
		if report != nil && !report.IsValid {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(report)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"theme":  input,
		"report": report,
	})
}

func (h *ThemeHandler) Compose(c *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(c)
	themeID := c.Params("themeId")

	var input domain.ComposeThemeInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	composed, err := h.themeService.Compose(c.Context(), tenantID, themeID, input.Customizations)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(composed)
}

func (h *ThemeHandler) Validate(c *fiber.Ctx) error {
	var input domain.ThemeConfig
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	return c.Status(fiber.StatusOK).JSON(h.themeService.Validate(&input))
}

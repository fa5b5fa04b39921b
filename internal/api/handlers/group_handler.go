package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/reviewdeck/internal/service"
)

type GroupHandler struct {
	s service.SyncService
}

func NewGroupHandler(s service.SyncService) *GroupHandler {
	return &GroupHandler{s: s}
}

func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Groups())
}

func (h *GroupHandler) SelectGroup(c *fiber.Ctx) error {
	var body struct {
		OriginKey string `json:"origin_key"`
		Mobile    bool   `json:"mobile"`
	}
	if err := c.BodyParser(&body); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	group, collapseNav, err := h.s.SelectGroup(body.OriginKey, body.Mobile)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"group":        group,
		"collapse_nav": collapseNav,
	})
}

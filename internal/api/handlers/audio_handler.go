package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/reviewdeck/internal/service"
)

type AudioHandler struct {
	s service.AudioService
}

func NewAudioHandler(s service.AudioService) *AudioHandler {
	return &AudioHandler{s: s}
}

func (h *AudioHandler) ReadAloud(c *fiber.Ctx) error {
	id := c.Params("id")

	url, err := h.s.ReadAloud(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": url,
	})
}

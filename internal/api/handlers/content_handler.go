package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/reviewdeck/internal/service"
)

type ContentHandler struct {
	s service.SyncService
	n *service.Notifier
}

func NewContentHandler(s service.SyncService, n *service.Notifier) *ContentHandler {
	return &ContentHandler{s: s, n: n}
}

func (h *ContentHandler) ListPosts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Posts())
}

func (h *ContentHandler) RefreshContent(c *fiber.Ctx) error {
	if err := h.s.Refresh(c.Context()); err != nil {
		slog.Error(err.Error())
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content refreshed",
	})
}

func (h *ContentHandler) UpdateText(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := h.s.EditText(c.Context(), id, body.Content); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content updated",
	})
}

func (h *ContentHandler) Rephrase(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Tone int `json:"tone"`
	}
	if err := c.BodyParser(&body); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}
	if body.Tone < 0 || body.Tone > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tone must be between 0 and 100",
		})
	}

	newText, err := h.s.Rephrase(c.Context(), id, body.Tone)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"content": newText,
	})
}

func (h *ContentHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.s.Approve(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Approved & Posted!",
	})
}

func (h *ContentHandler) Disapprove(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.s.Disapprove(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content rejected",
	})
}

func (h *ContentHandler) Notifications(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.n.Drain())
}

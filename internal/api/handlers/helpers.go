package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/reviewdeck/internal/service"
)

func statusFromError(err error) int {
	var transport *service.TransportError
	var empty *service.EmptyResultError
	var provider *service.ProviderError

	switch {
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrGroupNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrPostBusy), errors.Is(err, service.ErrNotPending):
		return fiber.StatusConflict
	case errors.As(err, &transport), errors.As(err, &empty), errors.As(err, &provider):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

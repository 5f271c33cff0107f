package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/store"
	"streamvault_backend/pkg/config"
)

// Shared handles, set once from main. The store instance is owned by main
// and injected here; handlers never reach for a global of their own.
var (
	Store *store.Store
	Cfg   *config.Config
)

func Init(s *store.Store, cfg *config.Config) {
	Store = s
	Cfg = cfg
}

// storeError maps store errors onto HTTP responses.
func storeError(c *fiber.Ctx, err error) error {
	var vErr *store.ValidationError

	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, store.ErrDuplicateID):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, store.ErrReasonRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A reason is required for this status change",
		})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": vErr.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

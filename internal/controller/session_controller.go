package controller

import (
	"github.com/gofiber/fiber/v2"
)

type SessionInput struct {
	CustomerID string `json:"customer_id" validate:"required"`
}

// GetCurrentCustomer resolves the session's customer. This never fails:
// an unset or stale pointer degrades to the guest placeholder.
func GetCurrentCustomer(c *fiber.Ctx) error {
	return c.JSON(Store.CurrentCustomer())
}

// SetCurrentCustomer switches which customer the console is acting as.
func SetCurrentCustomer(c *fiber.Ctx) error {
	input := new(SessionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.SetCurrentCustomer(input.CustomerID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

// ClearSession drops back to the guest view.
func ClearSession(c *fiber.Ctx) error {
	if err := Store.ClearCurrentCustomer(); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Session cleared",
	})
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/model"
)

func ListTickets(c *fiber.Ctx) error {
	return c.JSON(Store.Tickets())
}

func GetTicket(c *fiber.Ctx) error {
	rec, err := Store.Ticket(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

func CreateTicket(c *fiber.Ctx) error {
	input := new(model.Ticket)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.AddTicket(*input)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func UpdateTicket(c *fiber.Ctx) error {
	patch := new(model.TicketPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.UpdateTicket(c.Params("id"), *patch)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

func DeleteTicket(c *fiber.Ctx) error {
	if err := Store.RemoveTicket(c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Ticket removed",
	})
}

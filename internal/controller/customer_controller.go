package controller

import (
	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/model"
)

func ListCustomers(c *fiber.Ctx) error {
	return c.JSON(Store.Customers())
}

func GetCustomer(c *fiber.Ctx) error {
	rec, err := Store.Customer(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

// CreateCustomer is the admin "Add Subscriber" action.
func CreateCustomer(c *fiber.Ctx) error {
	input := new(model.Customer)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.AddCustomer(*input)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}

func UpdateCustomer(c *fiber.Ctx) error {
	patch := new(model.CustomerPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.UpdateCustomer(c.Params("id"), *patch)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

// DeleteCustomer hard-deletes the record. Linked subscriptions, invoices
// and tickets are left in place.
func DeleteCustomer(c *fiber.Ctx) error {
	if err := Store.RemoveCustomer(c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Customer removed",
	})
}

// GetCustomerSubscription resolves the customer's current subscription.
func GetCustomerSubscription(c *fiber.Ctx) error {
	sub, err := Store.CurrentSubscriptionFor(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(sub)
}

func GetCustomerInvoices(c *fiber.Ctx) error {
	invoices := Store.CustomerInvoices(c.Params("id"))
	if invoices == nil {
		invoices = []model.Invoice{}
	}
	return c.JSON(invoices)
}

func GetCustomerTickets(c *fiber.Ctx) error {
	tickets := Store.CustomerTickets(c.Params("id"))
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return c.JSON(tickets)
}

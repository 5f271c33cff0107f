package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/model"
	"streamvault_backend/pkg/payment"
)

func ListInvoices(c *fiber.Ctx) error {
	return c.JSON(Store.Invoices())
}

func GetInvoice(c *fiber.Ctx) error {
	rec, err := Store.Invoice(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

// CreateInvoice records a billing artifact. When the invoice arrives as
// paid, the charge is taken through the payment collaborator first.
func CreateInvoice(c *fiber.Ctx) error {
	input := new(model.Invoice)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	cust, err := Store.Customer(input.CustomerID)
	if err != nil {
		return storeError(c, err)
	}

	if input.Status == model.InvoicePaid && payment.Enabled() {
		stripeCustomerID, err := payment.EnsureCustomer(cust.Email, cust.Name)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not create payment customer",
			})
		}
		amount := input.Amount
		if amount == 0 {
			amount = input.ItemTotal()
		}
		if _, err := payment.ChargeInvoice(stripeCustomerID, amount, "usd"); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not take payment",
			})
		}
	}

	rec, err := Store.AddInvoice(*input)
	if err != nil {
		return storeError(c, err)
	}

	// Paid invoices bump the customer's lifetime spend.
	if rec.Status == model.InvoicePaid {
		total := cust.TotalSpent + rec.Amount
		if _, err := Store.UpdateCustomer(cust.ID, model.CustomerPatch{TotalSpent: &total}); err != nil {
			log.Printf("Could not update total spent for %s: %v", cust.ID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}

func UpdateInvoice(c *fiber.Ctx) error {
	patch := new(model.InvoicePatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	before, err := Store.Invoice(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}

	rec, err := Store.UpdateInvoice(before.ID, *patch)
	if err != nil {
		return storeError(c, err)
	}

	// First transition into paid counts toward lifetime spend.
	if before.Status != model.InvoicePaid && rec.Status == model.InvoicePaid {
		if cust, err := Store.Customer(rec.CustomerID); err == nil {
			total := cust.TotalSpent + rec.Amount
			if _, err := Store.UpdateCustomer(cust.ID, model.CustomerPatch{TotalSpent: &total}); err != nil {
				log.Printf("Could not update total spent for %s: %v", cust.ID, err)
			}
		}
	}

	return c.JSON(rec)
}

package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/model"
	"streamvault_backend/pkg/email"
	"streamvault_backend/pkg/payment"
)

type SubscriptionInput struct {
	CustomerID   string `json:"customer_id" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
	BillingCycle string `json:"billing_cycle"`
	Trial        bool   `json:"trial"`
}

type ReasonInput struct {
	Reason string `json:"reason"`
}

func ListSubscriptions(c *fiber.Ctx) error {
	return c.JSON(Store.Subscriptions())
}

func GetSubscription(c *fiber.Ctx) error {
	rec, err := Store.Subscription(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

// CreateSubscription signs a customer up for a catalog product. Payment is
// established with the payment collaborator first; the store only records
// subscriptions whose payment already succeeded.
func CreateSubscription(c *fiber.Ctx) error {
	input := new(SubscriptionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	cust, err := Store.Customer(input.CustomerID)
	if err != nil {
		return storeError(c, err)
	}

	product, err := Store.Product(input.ProductID)
	if err != nil {
		return storeError(c, err)
	}

	cycle := model.BillingCycle(input.BillingCycle)
	status := model.StatusActive
	if input.Trial {
		cycle = model.CycleTrial
		status = model.StatusTrial
	}

	var stripeSubID string
	if !input.Trial && payment.Enabled() {
		stripeCustomerID, err := payment.EnsureCustomer(cust.Email, cust.Name)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not create payment customer",
			})
		}
		stripeSubID, err = payment.CreateSubscription(stripeCustomerID, product.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not create payment subscription",
			})
		}
	}

	sub, err := Store.AddSubscription(model.Subscription{
		UserID:       cust.ID,
		PlanID:       product.ID,
		PlanName:     product.Name,
		Status:       status,
		Amount:       product.Price,
		Currency:     product.Currency,
		BillingCycle: cycle,
		AutoRenew:    !input.Trial,
		StripeSubID:  stripeSubID,
	})
	if err != nil {
		return storeError(c, err)
	}

	if email.GlobalEmailService != nil {
		err := email.GlobalEmailService.SendSubscriptionStartedEmail(
			cust.Email,
			cust.Name,
			sub.PlanName,
			sub.Amount,
			sub.Currency,
			string(sub.BillingCycle),
			sub.NextBillingDate,
			false,
		)
		if err != nil {
			log.Printf("Could not send subscription email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Subscription created successfully",
		"subscription": sub,
	})
}

// UpdateSubscription applies a raw patch; status changes go through the
// lifecycle engine inside the store.
func UpdateSubscription(c *fiber.Ctx) error {
	patch := new(model.SubscriptionPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.UpdateSubscription(c.Params("id"), *patch)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

// PauseSubscription pauses billing with a required reason.
func PauseSubscription(c *fiber.Ctx) error {
	input := new(ReasonInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	paused := model.StatusPaused
	sub, err := Store.UpdateSubscription(c.Params("id"), model.SubscriptionPatch{
		Status:      &paused,
		PauseReason: &input.Reason,
	})
	if err != nil {
		return storeError(c, err)
	}

	if email.GlobalEmailService != nil {
		if cust, err := Store.Customer(sub.UserID); err == nil {
			err := email.GlobalEmailService.SendSubscriptionPausedEmail(
				cust.Email, cust.Name, sub.PlanName, sub.PauseReason,
			)
			if err != nil {
				log.Printf("Could not send subscription paused email: %v", err)
			}
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Subscription paused",
		"subscription": sub,
	})
}

// ResumeSubscription reactivates a paused or trial subscription.
func ResumeSubscription(c *fiber.Ctx) error {
	active := model.StatusActive
	sub, err := Store.UpdateSubscription(c.Params("id"), model.SubscriptionPatch{
		Status: &active,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Subscription resumed",
		"subscription": sub,
	})
}

// CancelSubscription cancels for good: Stripe billing is stopped first,
// then the store transition runs, then the confirmation mail goes out.
// The store transition is not rolled back if the email fails.
func CancelSubscription(c *fiber.Ctx) error {
	input := new(ReasonInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	existing, err := Store.Subscription(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}

	if err := payment.CancelSubscription(existing.StripeSubID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not cancel payment subscription",
		})
	}

	cancelled := model.StatusCancelled
	sub, err := Store.UpdateSubscription(existing.ID, model.SubscriptionPatch{
		Status:       &cancelled,
		CancelReason: &input.Reason,
	})
	if err != nil {
		return storeError(c, err)
	}

	if email.GlobalEmailService != nil {
		if cust, err := Store.Customer(sub.UserID); err == nil {
			cancelDate := time.Now()
			if sub.CancelDate != nil {
				cancelDate = *sub.CancelDate
			}
			err := email.GlobalEmailService.SendSubscriptionCancelledEmail(
				cust.Email, cust.Name, sub.PlanName, sub.CancelReason, cancelDate,
			)
			if err != nil {
				log.Printf("Could not send subscription cancellation email: %v", err)
			}
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Subscription cancelled successfully",
		"subscription": sub,
	})
}

func DeleteSubscription(c *fiber.Ctx) error {
	if err := Store.RemoveSubscription(c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Subscription removed",
	})
}

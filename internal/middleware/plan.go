package middleware

import (
	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/store"
	"streamvault_backend/pkg/plan"
)

// CheckFeatureAccess gates a route on the current customer's plan. Guests
// resolve to the basic plan.
func CheckFeatureAccess(s *store.Store, feature plan.Feature) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := s.CurrentCustomer()
		planType := plan.Normalize(current.Plan)

		if !plan.CanUseFeature(planType, feature) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "This feature requires a higher subscription plan",
			})
		}

		return c.Next()
	}
}

package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"streamvault_backend/internal/model"
	"streamvault_backend/internal/store"
	"streamvault_backend/pkg/email"
)

// InitBillingSweep schedules the daily billing sweep: expiry warnings for
// subscriptions approaching their next billing date without auto-renew,
// and cancellation of trials past their end date.
func InitBillingSweep(s *store.Store) {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		sweepExpiringSubscriptions(s)
		sweepExpiredTrials(s)
	})

	if err != nil {
		log.Printf("Could not initialize billing sweep cron: %v", err)
		return
	}

	c.Start()
}

func sweepExpiringSubscriptions(s *store.Store) {
	log.Println("Checking for expiring subscriptions...")

	warningDays := []int{7, 3}

	for _, days := range warningDays {
		targetDate := time.Now().AddDate(0, 0, days).Format("2006-01-02")

		for _, sub := range s.Subscriptions() {
			if sub.Status != model.StatusActive || sub.AutoRenew {
				continue
			}
			if sub.NextBillingDate.Format("2006-01-02") != targetDate {
				continue
			}

			cust, err := s.Customer(sub.UserID)
			if err != nil {
				log.Printf("Skipping expiry warning for orphaned subscription %s: %v", sub.ID, err)
				continue
			}

			if email.GlobalEmailService != nil {
				err := email.GlobalEmailService.SendSubscriptionExpiryWarning(
					cust.Email,
					cust.Name,
					sub.PlanName,
					sub.NextBillingDate,
					days,
				)
				if err != nil {
					log.Printf("Error sending expiry warning to %s: %v", cust.Email, err)
				} else {
					log.Printf("Sent expiry warning to %s for subscription expiring in %d days", cust.Email, days)
				}
			}
		}
	}
}

// sweepExpiredTrials cancels trials whose end date has passed, through the
// normal mutation path so the customer mirror and notifications fire.
func sweepExpiredTrials(s *store.Store) {
	now := time.Now()
	cancelled := model.StatusCancelled
	reason := "trial period ended"

	for _, sub := range s.Subscriptions() {
		if sub.Status != model.StatusTrial || sub.EndDate.IsZero() || sub.EndDate.After(now) {
			continue
		}

		_, err := s.UpdateSubscription(sub.ID, model.SubscriptionPatch{
			Status:       &cancelled,
			CancelReason: &reason,
		})
		if err != nil {
			log.Printf("Could not cancel expired trial %s: %v", sub.ID, err)
			continue
		}
		log.Printf("Cancelled expired trial %s", sub.ID)

		if email.GlobalEmailService != nil {
			if cust, err := s.Customer(sub.UserID); err == nil {
				if err := email.GlobalEmailService.SendSubscriptionCancelledEmail(
					cust.Email, cust.Name, sub.PlanName, reason, now,
				); err != nil {
					log.Printf("Could not send trial expiry email: %v", err)
				}
			}
		}
	}
}

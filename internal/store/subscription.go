package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"streamvault_backend/internal/model"
)

const trialPeriod = 14 * 24 * time.Hour

// Subscriptions returns all subscriptions in insertion order.
func (s *Store) Subscriptions() []model.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subscriptions.list()
}

// Subscription returns one subscription by id.
func (s *Store) Subscription(id string) (model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.subscriptions.get(id)
	if !ok {
		return model.Subscription{}, ErrNotFound
	}
	return rec, nil
}

// AddSubscription records a subscription whose payment has already been
// established by the payment collaborator. The linked customer's mirrored
// status is written in the same commit.
func (s *Store) AddSubscription(sub model.Subscription) (model.Subscription, error) {
	var out model.Subscription
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		if sub.UserID == "" {
			return nil, invalid("user_id", "required")
		}
		if sub.Amount < 0 || (sub.Amount == 0 && sub.BillingCycle != model.CycleTrial) {
			return nil, invalid("amount", "must be positive")
		}

		if sub.ID == "" {
			sub.ID = uuid.NewString()
		}
		if sub.Status == "" {
			sub.Status = model.StatusActive
		}
		if sub.Currency == "" {
			sub.Currency = "USD"
		}
		if sub.BillingCycle == "" {
			sub.BillingCycle = model.CycleMonthly
		}
		if sub.StartDate.IsZero() {
			sub.StartDate = now
		}
		switch sub.BillingCycle {
		case model.CycleTrial:
			if sub.EndDate.IsZero() {
				sub.EndDate = sub.StartDate.Add(trialPeriod)
			}
		case model.CycleAnnual:
			if sub.NextBillingDate.IsZero() {
				sub.NextBillingDate = sub.StartDate.AddDate(1, 0, 0)
			}
		default:
			if sub.NextBillingDate.IsZero() {
				sub.NextBillingDate = sub.StartDate.AddDate(0, 1, 0)
			}
		}
		if sub.Status == model.StatusCancelled {
			return nil, invalid("status", "cannot add a cancelled subscription")
		}
		sub.AutoRenew = sub.AutoRenew || sub.Status == model.StatusActive
		sub.UpdatedAt = now

		if err := s.subscriptions.insert(sub.ID, sub); err != nil {
			return nil, err
		}

		kinds := []Kind{KindSubscriptions}
		if kind, mirrored := s.mirrorCustomerStatusLocked(sub.UserID, sub.Status, now); mirrored {
			kinds = append(kinds, kind)
		}
		out = sub
		return kinds, nil
	})
	return out, err
}

// UpdateSubscription merges a patch; a status change in the patch is run
// through the lifecycle engine, which validates the transition and applies
// the subscription and mirrored customer writes as one unit.
func (s *Store) UpdateSubscription(id string, patch model.SubscriptionPatch) (model.Subscription, error) {
	var out model.Subscription
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		rec, ok := s.subscriptions.get(id)
		if !ok {
			return nil, ErrNotFound
		}

		if patch.PlanID != nil {
			rec.PlanID = *patch.PlanID
		}
		if patch.PlanName != nil {
			rec.PlanName = *patch.PlanName
		}
		if patch.Amount != nil {
			if *patch.Amount <= 0 {
				return nil, invalid("amount", "must be positive")
			}
			rec.Amount = *patch.Amount
		}
		if patch.Currency != nil {
			rec.Currency = *patch.Currency
		}
		if patch.BillingCycle != nil {
			rec.BillingCycle = *patch.BillingCycle
		}
		if patch.EndDate != nil {
			rec.EndDate = *patch.EndDate
		}
		if patch.NextBillingDate != nil {
			rec.NextBillingDate = *patch.NextBillingDate
		}
		if patch.AutoRenew != nil {
			rec.AutoRenew = *patch.AutoRenew
		}
		if patch.PauseReason != nil {
			rec.PauseReason = *patch.PauseReason
		}
		if patch.CancelReason != nil {
			rec.CancelReason = *patch.CancelReason
		}

		statusChanged := patch.Status != nil && *patch.Status != rec.Status
		if statusChanged {
			if err := transition(&rec, *patch.Status, now); err != nil {
				return nil, err
			}
		}
		rec.UpdatedAt = now

		if err := s.subscriptions.replace(id, rec); err != nil {
			return nil, err
		}

		kinds := []Kind{KindSubscriptions}
		if statusChanged {
			if kind, mirrored := s.mirrorCustomerStatusLocked(rec.UserID, rec.Status, now); mirrored {
				kinds = append(kinds, kind)
			}
		}
		out = rec
		return kinds, nil
	})
	return out, err
}

// RemoveSubscription hard-deletes the record without touching the customer.
func (s *Store) RemoveSubscription(id string) error {
	return s.withWrite(func(now time.Time) ([]Kind, error) {
		if err := s.subscriptions.delete(id); err != nil {
			return nil, err
		}
		return []Kind{KindSubscriptions}, nil
	})
}

// transition is the lifecycle state machine: trial/active/paused/cancelled,
// cancelled terminal. It validates everything before mutating rec so a
// failed transition leaves the record untouched.
func transition(rec *model.Subscription, next model.SubscriptionStatus, now time.Time) error {
	if rec.Terminal() {
		return invalid("status", "subscription is cancelled")
	}

	switch next {
	case model.StatusPaused:
		if rec.Status != model.StatusActive {
			return invalid("status", "only an active subscription can be paused")
		}
		if strings.TrimSpace(rec.PauseReason) == "" {
			return ErrReasonRequired
		}
		rec.Status = model.StatusPaused

	case model.StatusActive:
		if rec.Status != model.StatusPaused && rec.Status != model.StatusTrial {
			return invalid("status", "cannot activate from "+string(rec.Status))
		}
		rec.Status = model.StatusActive
		rec.PauseReason = ""

	case model.StatusCancelled:
		if strings.TrimSpace(rec.CancelReason) == "" {
			return ErrReasonRequired
		}
		cancelDate := now
		rec.Status = model.StatusCancelled
		rec.CancelDate = &cancelDate
		rec.AutoRenew = false

	case model.StatusTrial:
		return invalid("status", "cannot transition back to trial")

	default:
		return invalid("status", "unknown status "+string(next))
	}
	return nil
}

// mirrorCustomerStatusLocked copies the subscription status onto the linked
// customer. A missing customer is tolerated (orphaned subscription).
func (s *Store) mirrorCustomerStatusLocked(customerID string, status model.SubscriptionStatus, now time.Time) (Kind, bool) {
	cust, ok := s.customers.get(customerID)
	if !ok {
		return KindCustomers, false
	}
	cust.SubscriptionStatus = status
	cust.UpdatedAt = now
	if err := s.customers.replace(customerID, cust); err != nil {
		return KindCustomers, false
	}
	return KindCustomers, true
}

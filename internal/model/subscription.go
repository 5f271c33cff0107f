package model

import "time"

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleAnnual  BillingCycle = "annual"
	CycleTrial   BillingCycle = "trial"
)

type Subscription struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	PlanID          string             `json:"plan_id,omitempty"`
	PlanName        string             `json:"plan_name"`
	Status          SubscriptionStatus `json:"status"`
	Amount          int64              `json:"amount"` // minor currency units
	Currency        string             `json:"currency"`
	BillingCycle    BillingCycle       `json:"billing_cycle"`
	StartDate       time.Time          `json:"start_date"`
	EndDate         time.Time          `json:"end_date,omitempty"`
	NextBillingDate time.Time          `json:"next_billing_date,omitempty"`
	AutoRenew       bool               `json:"auto_renew"`
	PauseReason     string             `json:"pause_reason,omitempty"`
	CancelReason    string             `json:"cancel_reason,omitempty"`
	CancelDate      *time.Time         `json:"cancel_date,omitempty"`
	StripeSubID     string             `json:"stripe_subscription_id,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type SubscriptionPatch struct {
	PlanID          *string             `json:"plan_id,omitempty"`
	PlanName        *string             `json:"plan_name,omitempty"`
	Status          *SubscriptionStatus `json:"status,omitempty"`
	Amount          *int64              `json:"amount,omitempty"`
	Currency        *string             `json:"currency,omitempty"`
	BillingCycle    *BillingCycle       `json:"billing_cycle,omitempty"`
	EndDate         *time.Time          `json:"end_date,omitempty"`
	NextBillingDate *time.Time          `json:"next_billing_date,omitempty"`
	AutoRenew       *bool               `json:"auto_renew,omitempty"`
	PauseReason     *string             `json:"pause_reason,omitempty"`
	CancelReason    *string             `json:"cancel_reason,omitempty"`
}

// Terminal reports whether no further lifecycle transition is allowed.
func (s *Subscription) Terminal() bool {
	return s.Status == StatusCancelled
}

package model

import (
	"strings"
	"time"
)

// SubscriptionStatus mirrors the linked subscription's lifecycle state on the
// customer record so list views never need a join.
type SubscriptionStatus string

const (
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
)

type BillingAddress struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country"`
}

type PaymentMethod struct {
	Type      string `json:"type"`
	IsDefault bool   `json:"is_default"`
}

type Customer struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone,omitempty"`
	Plan               string             `json:"plan"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	TotalSpent         int64              `json:"total_spent"` // minor currency units
	BillingAddress     BillingAddress     `json:"billing_address"`
	PaymentMethods     []PaymentMethod    `json:"payment_methods"`
	CreatedAt          time.Time          `json:"created_at"`
	LastLogin          time.Time          `json:"last_login"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// CustomerPatch carries a partial update. Nil fields are left untouched;
// nested values (billing address, payment methods) are replaced wholesale.
type CustomerPatch struct {
	Name               *string             `json:"name,omitempty"`
	Email              *string             `json:"email,omitempty"`
	Phone              *string             `json:"phone,omitempty"`
	Plan               *string             `json:"plan,omitempty"`
	SubscriptionStatus *SubscriptionStatus `json:"subscription_status,omitempty"`
	TotalSpent         *int64              `json:"total_spent,omitempty"`
	BillingAddress     *BillingAddress     `json:"billing_address,omitempty"`
	PaymentMethods     *[]PaymentMethod    `json:"payment_methods,omitempty"`
	LastLogin          *time.Time          `json:"last_login,omitempty"`
}

func (c *Customer) DefaultPaymentMethod() string {
	for _, pm := range c.PaymentMethods {
		if pm.IsDefault {
			return pm.Type
		}
	}
	if len(c.PaymentMethods) > 0 {
		return c.PaymentMethods[0].Type
	}
	return ""
}

// PlausibleEmail is the store's signup-grade email check: something before
// and after a single @, with a dot in the domain part.
func PlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

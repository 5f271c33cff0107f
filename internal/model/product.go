package model

import "time"

// Product is a catalog entry. No other entity holds a foreign key to it;
// the catalog is browse-only from the store's point of view.
type Product struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description,omitempty"`
	Price        int64        `json:"price"` // minor currency units
	Currency     string       `json:"currency"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	Features     []string     `json:"features,omitempty"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type ProductPatch struct {
	Name         *string       `json:"name,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Price        *int64        `json:"price,omitempty"`
	Currency     *string       `json:"currency,omitempty"`
	BillingCycle *BillingCycle `json:"billing_cycle,omitempty"`
	Features     *[]string     `json:"features,omitempty"`
	Active       *bool         `json:"active,omitempty"`
}

package model

import "time"

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

type InvoiceItem struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // minor currency units
}

// Invoice rows are keyed by customer id. CustomerName is only populated on
// rows hydrated from legacy snapshots that predate id-keyed invoices; new
// writes must carry CustomerID.
type Invoice struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	Amount        int64         `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	DueDate       time.Time     `json:"due_date"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []InvoiceItem `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type InvoicePatch struct {
	Amount        *int64         `json:"amount,omitempty"`
	Status        *InvoiceStatus `json:"status,omitempty"`
	DueDate       *time.Time     `json:"due_date,omitempty"`
	PaymentMethod *string        `json:"payment_method,omitempty"`
	Items         *[]InvoiceItem `json:"items,omitempty"`
}

// ItemTotal sums the line items.
func (i *Invoice) ItemTotal() int64 {
	var total int64
	for _, item := range i.Items {
		total += item.Amount
	}
	return total
}

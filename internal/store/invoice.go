package store

import (
	"time"

	"github.com/google/uuid"

	"streamvault_backend/internal/model"
)

// Invoices returns all invoices in insertion order.
func (s *Store) Invoices() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invoices.list()
}

// Invoice returns one invoice by id.
func (s *Store) Invoice(id string) (model.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.invoices.get(id)
	if !ok {
		return model.Invoice{}, ErrNotFound
	}
	return rec, nil
}

// AddInvoice records a billing artifact. New invoices must be keyed by
// customer id; name-keyed rows only exist in legacy data.
func (s *Store) AddInvoice(inv model.Invoice) (model.Invoice, error) {
	var out model.Invoice
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		if inv.CustomerID == "" {
			return nil, invalid("customer_id", "required")
		}
		if inv.Amount == 0 {
			inv.Amount = inv.ItemTotal()
		}
		if inv.Amount <= 0 {
			return nil, invalid("amount", "must be positive")
		}

		if inv.ID == "" {
			inv.ID = uuid.NewString()
		}
		if inv.Status == "" {
			inv.Status = model.InvoicePending
		}
		if inv.DueDate.IsZero() {
			inv.DueDate = now.AddDate(0, 0, 30)
		}
		inv.CustomerName = ""
		if inv.CreatedAt.IsZero() {
			inv.CreatedAt = now
		}
		inv.UpdatedAt = now

		if err := s.invoices.insert(inv.ID, inv); err != nil {
			return nil, err
		}
		out = inv
		return []Kind{KindInvoices}, nil
	})
	return out, err
}

// UpdateInvoice merges a patch over the existing record. Paid invoices are
// immutable in principle; the current design still allows field overwrite
// and keeps no audit trail.
func (s *Store) UpdateInvoice(id string, patch model.InvoicePatch) (model.Invoice, error) {
	var out model.Invoice
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		rec, ok := s.invoices.get(id)
		if !ok {
			return nil, ErrNotFound
		}

		if patch.Amount != nil {
			if *patch.Amount <= 0 {
				return nil, invalid("amount", "must be positive")
			}
			rec.Amount = *patch.Amount
		}
		if patch.Status != nil {
			rec.Status = *patch.Status
		}
		if patch.DueDate != nil {
			rec.DueDate = *patch.DueDate
		}
		if patch.PaymentMethod != nil {
			rec.PaymentMethod = *patch.PaymentMethod
		}
		if patch.Items != nil {
			rec.Items = *patch.Items
		}
		rec.UpdatedAt = now

		if err := s.invoices.replace(id, rec); err != nil {
			return nil, err
		}
		out = rec
		return []Kind{KindInvoices}, nil
	})
	return out, err
}

package store

import (
	"time"

	"streamvault_backend/internal/model"
)

// guestCustomer is the safe default the resolver degrades to when the
// session pointer references nothing; UI callers never need a nil check.
var guestCustomer = model.Customer{
	ID:    "guest",
	Name:  "Guest Viewer",
	Email: "guest@streamvault.tv",
	Plan:  "basic",
}

// CurrentSubscriptionFor returns the customer's current subscription: the
// non-cancelled one with the greatest updated_at, ties broken by id. A
// customer may hold several non-cancelled subscriptions (add-ons); the
// store does not enforce uniqueness at write time.
func (s *Store) CurrentSubscriptionFor(customerID string) (model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best model.Subscription
	found := false
	for _, sub := range s.subscriptions.list() {
		if sub.UserID != customerID || sub.Status == model.StatusCancelled {
			continue
		}
		if !found || sub.UpdatedAt.After(best.UpdatedAt) ||
			(sub.UpdatedAt.Equal(best.UpdatedAt) && sub.ID > best.ID) {
			best = sub
			found = true
		}
	}
	if !found {
		return model.Subscription{}, ErrNotFound
	}
	return best, nil
}

// CurrentCustomer resolves the session pointer, falling back to the guest
// placeholder when the pointer is unset or the customer was removed.
func (s *Store) CurrentCustomer() model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUserID != "" {
		if rec, ok := s.customers.get(s.currentUserID); ok {
			return rec
		}
	}
	return guestCustomer
}

// CurrentCustomerID returns the raw session pointer, which may reference a
// removed customer.
func (s *Store) CurrentCustomerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserID
}

// SetCurrentCustomer switches the session to an existing customer and
// stamps their last login.
func (s *Store) SetCurrentCustomer(id string) (model.Customer, error) {
	var out model.Customer
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		rec, ok := s.customers.get(id)
		if !ok {
			return nil, ErrNotFound
		}
		rec.LastLogin = now
		rec.UpdatedAt = now
		if err := s.customers.replace(id, rec); err != nil {
			return nil, err
		}
		s.currentUserID = id
		out = rec
		return []Kind{KindCustomers, KindSession}, nil
	})
	return out, err
}

// ClearCurrentCustomer resets the session pointer to the guest view.
func (s *Store) ClearCurrentCustomer() error {
	return s.withWrite(func(now time.Time) ([]Kind, error) {
		s.currentUserID = ""
		return []Kind{KindSession}, nil
	})
}

// CustomerInvoices returns the customer's invoices in insertion order.
// Rows are matched by id first; legacy rows that only carry a customer
// name are matched by name equality so they are not silently dropped.
func (s *Store) CustomerInvoices(customerID string) []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := ""
	if rec, ok := s.customers.get(customerID); ok {
		name = rec.Name
	}

	var out []model.Invoice
	for _, inv := range s.invoices.list() {
		if inv.CustomerID == customerID {
			out = append(out, inv)
			continue
		}
		if inv.CustomerID == "" && name != "" && inv.CustomerName == name {
			out = append(out, inv)
		}
	}
	return out
}

// CustomerTickets returns the customer's support tickets in insertion order.
func (s *Store) CustomerTickets(customerID string) []model.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Ticket
	for _, t := range s.tickets.list() {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}

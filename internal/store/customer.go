package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"streamvault_backend/internal/model"
)

// Customers returns all customers in insertion order.
func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.list()
}

// Customer returns one customer by id.
func (s *Store) Customer(id string) (model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.customers.get(id)
	if !ok {
		return model.Customer{}, ErrNotFound
	}
	return rec, nil
}

// AddCustomer validates and inserts a new customer. Omitted optional fields
// get defaults; the id is generated when blank.
func (s *Store) AddCustomer(c model.Customer) (model.Customer, error) {
	var out model.Customer
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		if strings.TrimSpace(c.Name) == "" {
			return nil, invalid("name", "required")
		}
		if !model.PlausibleEmail(c.Email) {
			return nil, invalid("email", "malformed address")
		}
		if s.emailTakenLocked(c.Email, "") {
			return nil, invalid("email", "already in use")
		}

		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Plan == "" {
			c.Plan = "basic"
		}
		c.PaymentMethods = normalizeDefaultMethod(c.PaymentMethods)
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.LastLogin.IsZero() {
			c.LastLogin = now
		}
		c.UpdatedAt = now

		if err := s.customers.insert(c.ID, c); err != nil {
			return nil, err
		}
		out = c
		return []Kind{KindCustomers}, nil
	})
	return out, err
}

// UpdateCustomer merges a patch over the existing record. Nested values in
// the patch replace the stored value wholesale; nil fields are kept.
func (s *Store) UpdateCustomer(id string, patch model.CustomerPatch) (model.Customer, error) {
	var out model.Customer
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		rec, ok := s.customers.get(id)
		if !ok {
			return nil, ErrNotFound
		}

		if patch.Email != nil {
			if !model.PlausibleEmail(*patch.Email) {
				return nil, invalid("email", "malformed address")
			}
			if s.emailTakenLocked(*patch.Email, id) {
				return nil, invalid("email", "already in use")
			}
			rec.Email = *patch.Email
		}
		if patch.TotalSpent != nil {
			if *patch.TotalSpent < rec.TotalSpent {
				return nil, invalid("total_spent", "cannot decrease")
			}
			rec.TotalSpent = *patch.TotalSpent
		}
		if patch.Name != nil {
			rec.Name = *patch.Name
		}
		if patch.Phone != nil {
			rec.Phone = *patch.Phone
		}
		if patch.Plan != nil {
			rec.Plan = *patch.Plan
		}
		if patch.SubscriptionStatus != nil {
			rec.SubscriptionStatus = *patch.SubscriptionStatus
		}
		if patch.BillingAddress != nil {
			rec.BillingAddress = *patch.BillingAddress
		}
		if patch.PaymentMethods != nil {
			rec.PaymentMethods = normalizeDefaultMethod(*patch.PaymentMethods)
		}
		if patch.LastLogin != nil {
			rec.LastLogin = *patch.LastLogin
		}
		rec.UpdatedAt = now

		if err := s.customers.replace(id, rec); err != nil {
			return nil, err
		}
		out = rec
		return []Kind{KindCustomers}, nil
	})
	return out, err
}

// RemoveCustomer hard-deletes the record. Subscriptions, invoices and
// tickets are not cascaded; orphaned rows stay addressable by id but drop
// out of customer-centric resolver queries.
func (s *Store) RemoveCustomer(id string) error {
	return s.withWrite(func(now time.Time) ([]Kind, error) {
		if err := s.customers.delete(id); err != nil {
			return nil, err
		}
		return []Kind{KindCustomers}, nil
	})
}

func (s *Store) emailTakenLocked(email, exceptID string) bool {
	for _, existing := range s.customers.list() {
		if existing.ID != exceptID && strings.EqualFold(existing.Email, email) {
			return true
		}
	}
	return false
}

// normalizeDefaultMethod keeps exactly one default payment method: the first
// marked default wins, or the first method when none is marked.
func normalizeDefaultMethod(methods []model.PaymentMethod) []model.PaymentMethod {
	if len(methods) == 0 {
		return methods
	}
	defaultAt := -1
	for i, pm := range methods {
		if pm.IsDefault {
			defaultAt = i
			break
		}
	}
	if defaultAt == -1 {
		defaultAt = 0
	}
	for i := range methods {
		methods[i].IsDefault = i == defaultAt
	}
	return methods
}

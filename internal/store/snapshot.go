package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"streamvault_backend/internal/model"
	"streamvault_backend/pkg/storage"
)

const (
	billingBlob = "billing-storage"
	sessionBlob = "app-storage"
)

// billingSnapshot is the persisted subset of the billing store. Invoices,
// tickets and products are re-seeded at hydration; loading state and
// last-modified timestamps are recomputed, never persisted.
type billingSnapshot struct {
	Customers     []model.Customer     `json:"customers"`
	Subscriptions []model.Subscription `json:"subscriptions"`
}

type sessionSnapshot struct {
	CurrentUserID string          `json:"currentUserId"`
	User          *model.Customer `json:"user,omitempty"`
}

// Dataset is a full set of records, used both as the hydration fallback and
// for loading fixtures in tests.
type Dataset struct {
	Customers     []model.Customer
	Subscriptions []model.Subscription
	Invoices      []model.Invoice
	Tickets       []model.Ticket
	Products      []model.Product
}

// Hydrate restores the store from its snapshots, falling back to the seed
// dataset when a snapshot is absent or unreadable. It never fails: a broken
// snapshot must not leave the console empty. Calling it again replays the
// same restore (idempotent).
func (s *Store) Hydrate(seed Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Non-persisted collections always come from the seed dataset.
	s.invoices.reset(invoiceIDs(seed.Invoices), normalizeInvoices(seed.Invoices, seed.Customers))
	s.tickets.reset(ticketIDs(seed.Tickets), seed.Tickets)
	s.products.reset(productIDs(seed.Products), seed.Products)

	var snap billingSnapshot
	if err := s.loadBlob(billingBlob, &snap); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Billing snapshot unreadable, loading seed data: %v", err)
		}
		snap.Customers = seed.Customers
		snap.Subscriptions = seed.Subscriptions
	}
	s.customers.reset(customerIDs(snap.Customers), snap.Customers)
	s.subscriptions.reset(subscriptionIDs(snap.Subscriptions), snap.Subscriptions)

	var sess sessionSnapshot
	if err := s.loadBlob(sessionBlob, &sess); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Session snapshot unreadable, starting as guest: %v", err)
		}
		sess.CurrentUserID = ""
	}
	s.currentUserID = sess.CurrentUserID

	s.lastModified = make(map[Kind]time.Time)
	s.persistErr = nil
}

func (s *Store) loadBlob(name string, out any) error {
	data, err := s.snapshots.Load(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

func (s *Store) persistBillingLocked() error {
	snap := billingSnapshot{
		Customers:     s.customers.list(),
		Subscriptions: s.subscriptions.list(),
	}
	return s.saveBlob(billingBlob, snap)
}

func (s *Store) persistSessionLocked() error {
	sess := sessionSnapshot{CurrentUserID: s.currentUserID}
	if rec, ok := s.customers.get(s.currentUserID); ok {
		sess.User = &rec
	}
	return s.saveBlob(sessionBlob, sess)
}

func (s *Store) saveBlob(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
	}
	if err := s.snapshots.Save(name, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
	}
	return nil
}

// normalizeInvoices resolves legacy name-keyed invoice rows to customer ids
// where a matching customer exists. Unresolvable rows keep their name so
// the resolver's name fallback can still find them.
func normalizeInvoices(invoices []model.Invoice, customers []model.Customer) []model.Invoice {
	byName := make(map[string]string, len(customers))
	for _, c := range customers {
		byName[c.Name] = c.ID
	}
	out := make([]model.Invoice, len(invoices))
	for i, inv := range invoices {
		if inv.CustomerID == "" && inv.CustomerName != "" {
			if id, ok := byName[inv.CustomerName]; ok {
				inv.CustomerID = id
				inv.CustomerName = ""
			}
		}
		out[i] = inv
	}
	return out
}

func customerIDs(recs []model.Customer) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

func subscriptionIDs(recs []model.Subscription) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

func invoiceIDs(recs []model.Invoice) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

func ticketIDs(recs []model.Ticket) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

func productIDs(recs []model.Product) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamvault_backend/internal/model"
	"streamvault_backend/internal/store"
	"streamvault_backend/pkg/storage"
)

func TestCurrentSubscriptionPicksLatestNonCancelled(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")

	addActiveSubscription(t, s, "s1", "c1")
	addActiveSubscription(t, s, "s2", "c1")

	// s1 was updated last, so it wins the tie-break.
	_, err := s.UpdateSubscription("s1", model.SubscriptionPatch{PlanName: strPtr("Premium+")})
	require.NoError(t, err)

	sub, err := s.CurrentSubscriptionFor("c1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sub.ID)

	// Cancelling s1 makes s2 current.
	_, err = s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:       statusPtr(model.StatusCancelled),
		CancelReason: strPtr("downgrade"),
	})
	require.NoError(t, err)

	sub, err = s.CurrentSubscriptionFor("c1")
	require.NoError(t, err)
	assert.Equal(t, "s2", sub.ID)
}

func TestCurrentSubscriptionNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CurrentSubscriptionFor("nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrphanTolerance(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	require.NoError(t, s.RemoveCustomer("c1"))

	// The orphaned subscription is still addressable by id...
	_, err := s.Subscription("s1")
	require.NoError(t, err)

	// ...but customer-centric resolution returns not-found, not a panic.
	_, err = s.CurrentSubscriptionFor("c1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCurrentCustomerGuestFallback(t *testing.T) {
	s := newTestStore(t)

	guest := s.CurrentCustomer()
	assert.Equal(t, "guest", guest.ID)

	addCustomer(t, s, "c1", "A", "a@b.com")
	rec, err := s.SetCurrentCustomer("c1")
	require.NoError(t, err)
	assert.False(t, rec.LastLogin.IsZero())
	assert.Equal(t, "c1", s.CurrentCustomer().ID)

	// Removing the customer degrades the session back to guest.
	require.NoError(t, s.RemoveCustomer("c1"))
	assert.Equal(t, "guest", s.CurrentCustomer().ID)
	assert.Equal(t, "c1", s.CurrentCustomerID())
}

func TestSetCurrentCustomerNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SetCurrentCustomer("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCustomerInvoicesLegacyNameFallback(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s := store.New(snaps)
	s.Hydrate(store.Dataset{
		Customers: []model.Customer{
			{ID: "c1", Name: "Zara Holt", Email: "zara@example.com", CreatedAt: time.Now()},
		},
		Invoices: []model.Invoice{
			{ID: "i1", CustomerID: "c1", Amount: 990, Status: model.InvoicePaid},
			// legacy row, resolvable by name at hydration
			{ID: "i2", CustomerName: "Zara Holt", Amount: 990, Status: model.InvoicePending},
			// legacy row whose customer does not exist yet
			{ID: "i3", CustomerName: "Finn Berg", Amount: 500, Status: model.InvoiceOverdue},
		},
	})

	invoices := s.CustomerInvoices("c1")
	require.Len(t, invoices, 2)
	assert.Equal(t, "i1", invoices[0].ID)
	assert.Equal(t, "i2", invoices[1].ID)
	// the resolvable legacy row was normalized to an id key
	assert.Equal(t, "c1", invoices[1].CustomerID)

	// The unresolvable legacy row attaches by name once the customer exists.
	finn, err := s.AddCustomer(model.Customer{Name: "Finn Berg", Email: "finn@example.com"})
	require.NoError(t, err)

	invoices = s.CustomerInvoices(finn.ID)
	require.Len(t, invoices, 1)
	assert.Equal(t, "i3", invoices[0].ID)
}

func TestCustomerTickets(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addCustomer(t, s, "c2", "B", "b@b.com")

	_, err := s.AddTicket(model.Ticket{ID: "t1", CustomerID: "c1", Subject: "No audio"})
	require.NoError(t, err)
	_, err = s.AddTicket(model.Ticket{ID: "t2", CustomerID: "c2", Subject: "Buffering"})
	require.NoError(t, err)

	tickets := s.CustomerTickets("c1")
	require.Len(t, tickets, 1)
	assert.Equal(t, "t1", tickets[0].ID)
}

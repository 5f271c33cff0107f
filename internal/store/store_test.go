package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamvault_backend/internal/model"
	"streamvault_backend/internal/store"
	"streamvault_backend/pkg/storage"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s := store.New(snaps)
	s.Hydrate(store.Dataset{})
	return s
}

func strPtr(s string) *string { return &s }

func addCustomer(t *testing.T, s *store.Store, id, name, email string) model.Customer {
	t.Helper()
	rec, err := s.AddCustomer(model.Customer{ID: id, Name: name, Email: email})
	require.NoError(t, err)
	return rec
}

func TestAddCustomerDefaults(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.AddCustomer(model.Customer{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "basic", rec.Plan)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestAddCustomerValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCustomer(model.Customer{Name: "NoMail", Email: "not-an-email"})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	_, err = s.AddCustomer(model.Customer{Email: "ok@example.com"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestAddCustomerDuplicateID(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")

	_, err := s.AddCustomer(model.Customer{ID: "c1", Name: "B", Email: "b@b.com"})
	assert.ErrorIs(t, err, store.ErrDuplicateID)
}

func TestDuplicateEmailRejected(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")

	_, err := s.AddCustomer(model.Customer{ID: "c2", Name: "B", Email: "A@B.com"})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateCustomer("missing", model.CustomerPatch{Name: strPtr("X")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateCustomerMerge(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.AddCustomer(model.Customer{
		ID:    "c1",
		Name:  "A",
		Email: "a@b.com",
		BillingAddress: model.BillingAddress{
			City:    "Oslo",
			Country: "NO",
		},
	})
	require.NoError(t, err)

	// A patch without billing address keeps the stored value.
	updated, err := s.UpdateCustomer("c1", model.CustomerPatch{Phone: strPtr("+47 123")})
	require.NoError(t, err)
	assert.Equal(t, "+47 123", updated.Phone)
	assert.Equal(t, rec.BillingAddress, updated.BillingAddress)

	// A patch with a billing address replaces it wholesale.
	updated, err = s.UpdateCustomer("c1", model.CustomerPatch{
		BillingAddress: &model.BillingAddress{Country: "SE"},
	})
	require.NoError(t, err)
	assert.Equal(t, "SE", updated.BillingAddress.Country)
	assert.Empty(t, updated.BillingAddress.City)
	assert.True(t, updated.UpdatedAt.After(rec.UpdatedAt) || updated.UpdatedAt.Equal(rec.UpdatedAt))
}

func TestTotalSpentMonotonic(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")

	up := int64(5000)
	_, err := s.UpdateCustomer("c1", model.CustomerPatch{TotalSpent: &up})
	require.NoError(t, err)

	down := int64(100)
	_, err = s.UpdateCustomer("c1", model.CustomerPatch{TotalSpent: &down})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "total_spent", vErr.Field)
}

func TestSingleDefaultPaymentMethod(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.AddCustomer(model.Customer{
		ID:    "c1",
		Name:  "A",
		Email: "a@b.com",
		PaymentMethods: []model.PaymentMethod{
			{Type: "visa", IsDefault: true},
			{Type: "paypal", IsDefault: true},
		},
	})
	require.NoError(t, err)

	defaults := 0
	for _, pm := range rec.PaymentMethods {
		if pm.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.Equal(t, "visa", rec.DefaultPaymentMethod())
}

func TestListIdempotent(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addCustomer(t, s, "c2", "B", "b@b.com")

	first := s.Customers()
	second := s.Customers()
	assert.Equal(t, first, second)
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c3", "C", "c@b.com")
	addCustomer(t, s, "c1", "A", "a@b.com")
	addCustomer(t, s, "c2", "B", "b@b.com")

	var ids []string
	for _, rec := range s.Customers() {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"c3", "c1", "c2"}, ids)
}

func TestRemoveCustomer(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")

	require.NoError(t, s.RemoveCustomer("c1"))
	_, err := s.Customer("c1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.RemoveCustomer("c1"), store.ErrNotFound)
}

func TestChangeNotification(t *testing.T) {
	s := newTestStore(t)

	var seen []store.Kind
	s.Subscribe(func(kinds ...store.Kind) {
		seen = append(seen, kinds...)
	})

	before := s.LastModified(store.KindCustomers)
	assert.True(t, before.IsZero())

	addCustomer(t, s, "c1", "A", "a@b.com")

	assert.Contains(t, seen, store.KindCustomers)
	assert.False(t, s.LastModified(store.KindCustomers).IsZero())
	assert.True(t, s.LastModified(store.KindInvoices).IsZero())
}

func TestFailedMutationDoesNotNotify(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	s.Subscribe(func(kinds ...store.Kind) { calls++ })

	_, err := s.UpdateCustomer("missing", model.CustomerPatch{Name: strPtr("X")})
	require.Error(t, err)
	assert.Zero(t, calls)
}

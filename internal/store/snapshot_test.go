package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamvault_backend/internal/model"
	"streamvault_backend/internal/store"
	"streamvault_backend/pkg/storage"
)

// failingStore accepts loads but rejects every write.
type failingStore struct{}

func (failingStore) Save(name string, data []byte) error {
	return errors.New("disk full")
}

func (failingStore) Load(name string) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func demoDataset() store.Dataset {
	return store.Dataset{
		Customers: []model.Customer{
			{ID: "seed1", Name: "Seed Customer", Email: "seed@example.com"},
		},
		Subscriptions: []model.Subscription{
			{ID: "seedsub1", UserID: "seed1", PlanName: "Basic", Status: model.StatusActive, Amount: 990},
		},
		Products: []model.Product{
			{ID: "prod1", Name: "Basic", Slug: "basic", Price: 990, Active: true},
		},
	}
}

func TestRoundTripPersistence(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s1 := store.New(snaps)
	s1.Hydrate(store.Dataset{})

	_, err = s1.AddCustomer(model.Customer{ID: "c1", Name: "A", Email: "a@b.com"})
	require.NoError(t, err)
	_, err = s1.AddSubscription(model.Subscription{ID: "s1", UserID: "c1", PlanName: "Mega", Amount: 1990})
	require.NoError(t, err)
	_, err = s1.SetCurrentCustomer("c1")
	require.NoError(t, err)

	// A fresh store over the same backend reproduces the persisted subset.
	s2 := store.New(snaps)
	s2.Hydrate(store.Dataset{})

	assert.Equal(t, s1.Customers(), s2.Customers())
	assert.Equal(t, s1.Subscriptions(), s2.Subscriptions())
	assert.Equal(t, "c1", s2.CurrentCustomerID())
}

func TestHydrateIdempotent(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s := store.New(snaps)
	s.Hydrate(demoDataset())
	first := s.Customers()

	s.Hydrate(demoDataset())
	assert.Equal(t, first, s.Customers())
}

func TestHydrateMissingSnapshotLoadsSeed(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s := store.New(snaps)
	s.Hydrate(demoDataset())

	customers := s.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, "seed1", customers[0].ID)
	assert.Len(t, s.Subscriptions(), 1)
	assert.Len(t, s.Products(), 1)
}

func TestHydrateCorruptSnapshotLoadsSeed(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, snaps.Save("billing-storage", []byte("{not json")))
	require.NoError(t, snaps.Save("app-storage", []byte("also broken")))

	s := store.New(snaps)
	s.Hydrate(demoDataset())

	customers := s.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, "seed1", customers[0].ID)
	assert.Equal(t, "guest", s.CurrentCustomer().ID)
}

func TestSnapshotOverridesSeed(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s1 := store.New(snaps)
	s1.Hydrate(demoDataset())
	_, err = s1.AddCustomer(model.Customer{ID: "c9", Name: "New", Email: "new@example.com"})
	require.NoError(t, err)

	s2 := store.New(snaps)
	s2.Hydrate(demoDataset())

	ids := make(map[string]bool)
	for _, rec := range s2.Customers() {
		ids[rec.ID] = true
	}
	assert.True(t, ids["seed1"])
	assert.True(t, ids["c9"])

	// Products are not persisted and always come from the seed dataset.
	require.Len(t, s2.Products(), 1)
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	s := store.New(failingStore{})
	s.Hydrate(store.Dataset{})

	var hookErr error
	s.OnPersistError = func(err error) { hookErr = err }

	rec, err := s.AddCustomer(model.Customer{ID: "c1", Name: "A", Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "c1", rec.ID)

	// In-memory state stays authoritative.
	got, err := s.Customer("c1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	assert.ErrorIs(t, s.LastPersistError(), store.ErrPersistenceWrite)
	assert.ErrorIs(t, hookErr, store.ErrPersistenceWrite)
}

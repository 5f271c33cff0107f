package store

import (
	"log"
	"sync"
	"time"

	"streamvault_backend/internal/model"
	"streamvault_backend/pkg/storage"
)

// Kind names one entity collection.
type Kind string

const (
	KindCustomers     Kind = "customers"
	KindSubscriptions Kind = "subscriptions"
	KindInvoices      Kind = "invoices"
	KindTickets       Kind = "tickets"
	KindProducts      Kind = "products"
	KindSession       Kind = "session"
)

// Listener is notified after every committed mutation with the kinds that
// changed. Listeners run synchronously, outside the write lock.
type Listener func(kinds ...Kind)

// Store is the single source of truth for all billing entities. One instance
// is built in main and handed to every consumer; there is no package-level
// global. All mutations go through the Add/Update/Remove methods, which
// serialize on one write lock, so each call is a full read-merge-write with
// last-writer-wins semantics.
type Store struct {
	mu sync.RWMutex

	customers     *collection[model.Customer]
	subscriptions *collection[model.Subscription]
	invoices      *collection[model.Invoice]
	tickets       *collection[model.Ticket]
	products      *collection[model.Product]

	// session pointer for the "current customer" view
	currentUserID string

	snapshots    storage.SnapshotStore
	lastModified map[Kind]time.Time
	listeners    []Listener

	persistErr error

	// OnPersistError, when set, receives every failed snapshot write. The
	// failure is never returned from the mutation itself.
	OnPersistError func(error)
}

// New builds an empty store backed by the given snapshot store. Call
// Hydrate before serving reads.
func New(snapshots storage.SnapshotStore) *Store {
	return &Store{
		customers:     newCollection[model.Customer](),
		subscriptions: newCollection[model.Subscription](),
		invoices:      newCollection[model.Invoice](),
		tickets:       newCollection[model.Ticket](),
		products:      newCollection[model.Product](),
		snapshots:     snapshots,
		lastModified:  make(map[Kind]time.Time),
	}
}

// Subscribe registers a change listener.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// LastModified returns when the given collection last changed. The zero time
// means it has not changed since hydration.
func (s *Store) LastModified(kind Kind) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastModified[kind]
}

// LastPersistError returns the most recent snapshot write failure, or nil.
// In-memory state stays authoritative even when this is non-nil.
func (s *Store) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// withWrite runs fn under the write lock. When fn reports changed kinds, the
// whole set is committed as one unit: timestamps stamped, snapshots written,
// listeners notified. When fn fails nothing is stamped, persisted or
// notified, so multi-entity writes either fully apply or fully reject.
func (s *Store) withWrite(fn func(now time.Time) ([]Kind, error)) error {
	now := time.Now().UTC()

	s.mu.Lock()
	kinds, err := fn(now)
	if err != nil || len(kinds) == 0 {
		s.mu.Unlock()
		return err
	}

	billing, session := false, false
	for _, kind := range kinds {
		s.lastModified[kind] = now
		if kind == KindSession {
			session = true
		} else {
			billing = true
		}
	}

	var persistErr error
	if billing {
		if perr := s.persistBillingLocked(); perr != nil {
			persistErr = perr
		}
	}
	if session {
		if perr := s.persistSessionLocked(); perr != nil {
			persistErr = perr
		}
	}
	if persistErr != nil {
		s.persistErr = persistErr
	}

	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	hook := s.OnPersistError
	s.mu.Unlock()

	if persistErr != nil {
		log.Printf("Snapshot write failed (in-memory state remains authoritative): %v", persistErr)
		if hook != nil {
			hook(persistErr)
		}
	}

	for _, l := range listeners {
		l(kinds...)
	}
	return nil
}

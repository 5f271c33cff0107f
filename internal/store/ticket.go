package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"streamvault_backend/internal/model"
)

// Tickets returns all support tickets in insertion order.
func (s *Store) Tickets() []model.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickets.list()
}

// Ticket returns one ticket by id.
func (s *Store) Ticket(id string) (model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tickets.get(id)
	if !ok {
		return model.Ticket{}, ErrNotFound
	}
	return rec, nil
}

func (s *Store) AddTicket(t model.Ticket) (model.Ticket, error) {
	var out model.Ticket
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		if t.CustomerID == "" {
			return nil, invalid("customer_id", "required")
		}
		if strings.TrimSpace(t.Subject) == "" {
			return nil, invalid("subject", "required")
		}

		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if t.Status == "" {
			t.Status = model.TicketOpen
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		t.UpdatedAt = now

		if err := s.tickets.insert(t.ID, t); err != nil {
			return nil, err
		}
		out = t
		return []Kind{KindTickets}, nil
	})
	return out, err
}

func (s *Store) UpdateTicket(id string, patch model.TicketPatch) (model.Ticket, error) {
	var out model.Ticket
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		rec, ok := s.tickets.get(id)
		if !ok {
			return nil, ErrNotFound
		}

		if patch.Subject != nil {
			rec.Subject = *patch.Subject
		}
		if patch.Message != nil {
			rec.Message = *patch.Message
		}
		if patch.Priority != nil {
			rec.Priority = *patch.Priority
		}
		if patch.Status != nil {
			rec.Status = *patch.Status
		}
		rec.UpdatedAt = now

		if err := s.tickets.replace(id, rec); err != nil {
			return nil, err
		}
		out = rec
		return []Kind{KindTickets}, nil
	})
	return out, err
}

func (s *Store) RemoveTicket(id string) error {
	return s.withWrite(func(now time.Time) ([]Kind, error) {
		if err := s.tickets.delete(id); err != nil {
			return nil, err
		}
		return []Kind{KindTickets}, nil
	})
}

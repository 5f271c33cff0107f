package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"streamvault_backend/internal/model"
)

// Products returns the catalog in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.list()
}

// Product returns one catalog entry by id.
func (s *Store) Product(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.products.get(id)
	if !ok {
		return model.Product{}, ErrNotFound
	}
	return rec, nil
}

func (s *Store) AddProduct(p model.Product) (model.Product, error) {
	var out model.Product
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		if strings.TrimSpace(p.Name) == "" {
			return nil, invalid("name", "required")
		}
		if p.Price <= 0 {
			return nil, invalid("price", "must be positive")
		}

		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Slug == "" {
			p.Slug = slug.Make(p.Name)
		}
		if p.Currency == "" {
			p.Currency = "USD"
		}
		if p.BillingCycle == "" {
			p.BillingCycle = model.CycleMonthly
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now

		if err := s.products.insert(p.ID, p); err != nil {
			return nil, err
		}
		out = p
		return []Kind{KindProducts}, nil
	})
	return out, err
}

func (s *Store) UpdateProduct(id string, patch model.ProductPatch) (model.Product, error) {
	var out model.Product
	err := s.withWrite(func(now time.Time) ([]Kind, error) {
		rec, ok := s.products.get(id)
		if !ok {
			return nil, ErrNotFound
		}

		if patch.Name != nil {
			if strings.TrimSpace(*patch.Name) == "" {
				return nil, invalid("name", "required")
			}
			rec.Name = *patch.Name
			rec.Slug = slug.Make(*patch.Name)
		}
		if patch.Price != nil {
			if *patch.Price <= 0 {
				return nil, invalid("price", "must be positive")
			}
			rec.Price = *patch.Price
		}
		if patch.Description != nil {
			rec.Description = *patch.Description
		}
		if patch.Currency != nil {
			rec.Currency = *patch.Currency
		}
		if patch.BillingCycle != nil {
			rec.BillingCycle = *patch.BillingCycle
		}
		if patch.Features != nil {
			rec.Features = *patch.Features
		}
		if patch.Active != nil {
			rec.Active = *patch.Active
		}
		rec.UpdatedAt = now

		if err := s.products.replace(id, rec); err != nil {
			return nil, err
		}
		out = rec
		return []Kind{KindProducts}, nil
	})
	return out, err
}

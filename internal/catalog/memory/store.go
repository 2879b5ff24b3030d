package memory

import (
	"fmt"

	"github.com/dwikikusuma/retail-checkout/internal/catalog/app"
	"github.com/dwikikusuma/retail-checkout/internal/catalog/domain"
)

// Store keeps the catalog for the lifetime of one session. Products are
// handed out by pointer so cart lines and checkout share the live stock
// count. Single logical thread of control assumed, no locking.
type Store struct {
	byID  map[string]*domain.Product
	order []string
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*domain.Product)}
}

func (s *Store) Create(p *domain.Product) (*domain.Product, error) {
	if _, ok := s.byID[p.ID]; ok {
		return nil, fmt.Errorf("product %s already registered", p.ID)
	}
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *Store) Get(id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, app.ErrNotFound)
	}
	return p, nil
}

// List returns products in registration order.
func (s *Store) List() []*domain.Product {
	out := make([]*domain.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

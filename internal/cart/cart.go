// Package cart implements the in-memory shopping cart: an ordered list of
// line items with add, remove and aggregate operations. The store holds
// product snapshots by value, so a mid-session catalog change never alters
// what is already in the cart.
package cart

import (
	"errors"
	"sync"

	"mesnato/internal/domain"
	"mesnato/internal/pricing"

	"github.com/google/uuid"
)

var ErrInvalidWeight = errors.New("weight must be a positive number of grams")

// IDGenerator produces unique line item ids. It is injected so tests can
// supply deterministic ids.
type IDGenerator func() string

// Item is one cart line: a product snapshot paired with a chosen quantity.
type Item struct {
	ID      string
	Product domain.Product
	Grams   int
}

// Store holds the cart state for a single session. All methods are safe for
// concurrent use; each mutation observes a consistent snapshot and produces
// the next one atomically.
type Store struct {
	mu    sync.Mutex
	newID IDGenerator
	items []Item
}

// NewStore creates an empty cart. A nil generator falls back to random
// UUIDs.
func NewStore(newID IDGenerator) *Store {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Store{newID: newID}
}

// AddItem appends a new line for the given product. Every add creates a
// distinct line even for a product already in the cart, so the same cut can
// sit in the cart at different weights. Non-positive weights are rejected.
func (s *Store) AddItem(product domain.Product, grams int) (Item, error) {
	if grams <= 0 {
		return Item{}, ErrInvalidWeight
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:      s.newID(),
		Product: product,
		Grams:   grams,
	}
	s.items = append(s.items, item)
	return item, nil
}

// RemoveItem deletes the line with the given id. Removing an id that is not
// present is a no-op, so deletion is idempotent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]Item, len(s.items))
	copy(copied, s.items)
	return copied
}

// Len reports the number of lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Totals recomputes the aggregate weight and price from scratch on every
// call. Each line is priced from its own snapshot, not the current catalog.
func (s *Store) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals domain.Totals
	for _, item := range s.items {
		totals.Grams += item.Grams
		totals.Price += pricing.LineTotal(item.Grams, pricing.ParseUnitPrice(item.Product.Price))
	}
	return totals
}

// Lines renders the cart in the wire form used by the order payload.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.items))
	for i, item := range s.items {
		lines[i] = domain.CartLine{
			Name:  item.Product.Name,
			Grams: item.Grams,
			Price: item.Product.Price,
		}
	}
	return lines
}

// Clear empties the cart. Callers invoke it only after a submission has been
// acknowledged as successful, never optimistically.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

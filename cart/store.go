// Package cart implements the per-client shopping cart: an
// insertion-ordered list of product snapshots with quantities, backed
// by a single durable storage slot that is reloaded when the store is
// opened and rewritten after every mutation.
package cart

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/Oghenetega16/audiophile-api/models"
)

// Store holds one client's cart. It is not safe for concurrent use;
// each request opens its own store against the shared storage.
//
// Invariants: at most one item per product id, quantities always >= 1
// (anything lower removes the item), display order is insertion order.
type Store struct {
	key     string
	storage SnapshotStorage
	items   []models.CartItem
	loaded  bool
}

// Open returns a store for the given cart key, rehydrated from the
// saved snapshot if one exists. A corrupt snapshot is logged and
// discarded, never surfaced: the client simply starts with an empty
// cart. The snapshot is read exactly once, and no write happens before
// this load completes, so an empty store can never clobber a valid
// saved cart.
func Open(storage SnapshotStorage, key string) *Store {
	s := &Store{key: key, storage: storage}
	payload, err := storage.Load(key)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(payload, &s.items); jsonErr != nil {
			log.Printf("discarding corrupt cart snapshot for %s: %v", key, jsonErr)
			s.items = nil
		}
	case !errors.Is(err, ErrSnapshotNotFound):
		log.Printf("failed to load cart snapshot for %s: %v", key, err)
	}
	s.loaded = true
	return s
}

// Add merges the product into the cart: an existing entry accumulates
// quantity, a new one is appended at the end. Quantities below 1 are a
// caller contract violation and are clamped to 1.
func (s *Store) Add(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	s.persist()
}

// Remove deletes the item for the given product id. Absent ids are a
// no-op.
func (s *Store) Remove(productID int) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetQuantity overwrites an item's quantity. A quantity <= 0 removes
// the item; an unknown id is a no-op.
func (s *Store) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.items = nil
	s.persist()
}

// Items returns the cart contents in display order.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItemCount is the sum of all quantities, recomputed on every call.
func (s *Store) TotalItemCount() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity, recomputed on every call.
func (s *Store) TotalPrice() float64 {
	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// persist writes the full snapshot. Mutations have no error path, so a
// failed write is logged; the in-memory cart stays authoritative for
// the rest of the request.
func (s *Store) persist() {
	if !s.loaded {
		return
	}
	payload, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("failed to encode cart snapshot for %s: %v", s.key, err)
		return
	}
	if err := s.storage.Save(s.key, payload); err != nil {
		log.Printf("failed to save cart snapshot for %s: %v", s.key, err)
	}
}

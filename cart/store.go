package cart

import (
	"encoding/json"

	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/utils"
)

// Storage is the persistent key-value boundary the store writes through.
// Implementations are device-local (the session cookie in production, an
// in-memory map in tests); values are serialized JSON text.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Storage keys owned by the store.
const (
	KeyCart          = "cart"
	KeyAppliedCoupon = "applied_coupon"
)

// Store owns the persisted cart mapping and the applied-coupon snapshot.
// Every operation fails open: missing, corrupt, or unwritable storage never
// surfaces an error to the caller, only a safe default.
type Store struct {
	storage Storage
}

// NewStore creates a cart store over the given storage.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load reads the persisted cart. Corrupt or missing data yields an empty
// cart. The legacy flat-list format (one identifier per unit purchased) is
// migrated transparently by counting duplicate occurrences; the migration is
// one-way and becomes permanent on the next Save.
func (s *Store) Load() models.Cart {
	raw, ok := s.storage.Get(KeyCart)
	if !ok || raw == "" {
		return models.Cart{}
	}
	return ParseCart([]byte(raw))
}

// ParseCart decodes a persisted cart representation, accepting both the
// canonical quantity mapping and the legacy identifier list. Entries with
// non-positive quantities are dropped.
func ParseCart(raw []byte) models.Cart {
	var mapping map[string]int
	if err := json.Unmarshal(raw, &mapping); err == nil {
		cart := models.Cart{}
		for id, qty := range mapping {
			if qty > 0 {
				cart[id] = qty
			}
		}
		return cart
	}

	// Legacy format: a flat array of identifiers, duplicates meaning
	// multiple units.
	var legacy []models.ProductID
	if err := json.Unmarshal(raw, &legacy); err == nil {
		cart := models.Cart{}
		for _, id := range legacy {
			cart[string(id)]++
		}
		return cart
	}

	utils.LogDebug("Discarding unparsable cart data: %q", string(raw))
	return models.Cart{}
}

// Save persists the cart mapping. A storage failure is logged and swallowed;
// the in-memory cart stays valid for the rest of the session.
func (s *Store) Save(cart models.Cart) {
	data, err := json.Marshal(cart)
	if err != nil {
		utils.LogError("Failed to serialize cart: %v", err)
		return
	}
	if err := s.storage.Set(KeyCart, string(data)); err != nil {
		utils.LogError("Failed to persist cart: %v", err)
	}
}

// SetQuantity sets the quantity for a product, removing the entry when the
// quantity is zero or negative. Stock capping is the caller's concern.
func (s *Store) SetQuantity(cart models.Cart, id string, qty int) models.Cart {
	if cart == nil {
		cart = models.Cart{}
	}
	if qty <= 0 {
		delete(cart, id)
	} else {
		cart[id] = qty
	}
	s.Save(cart)
	return cart
}

// Clear removes all cart entries.
func (s *Store) Clear() {
	if err := s.storage.Delete(KeyCart); err != nil {
		utils.LogError("Failed to clear cart: %v", err)
	}
}

// AppliedCoupon returns the persisted coupon snapshot, or nil when none is
// applied or the stored value is unreadable.
func (s *Store) AppliedCoupon() *models.Coupon {
	raw, ok := s.storage.Get(KeyAppliedCoupon)
	if !ok || raw == "" {
		return nil
	}
	var coupon models.Coupon
	if err := json.Unmarshal([]byte(raw), &coupon); err != nil {
		utils.LogDebug("Discarding unparsable applied coupon: %q", raw)
		return nil
	}
	return &coupon
}

// SetAppliedCoupon persists the coupon snapshot taken at apply time, or
// evicts it when coupon is nil.
func (s *Store) SetAppliedCoupon(coupon *models.Coupon) {
	if coupon == nil {
		if err := s.storage.Delete(KeyAppliedCoupon); err != nil {
			utils.LogError("Failed to remove applied coupon: %v", err)
		}
		return
	}
	data, err := json.Marshal(coupon)
	if err != nil {
		utils.LogError("Failed to serialize applied coupon: %v", err)
		return
	}
	if err := s.storage.Set(KeyAppliedCoupon, string(data)); err != nil {
		utils.LogError("Failed to persist applied coupon: %v", err)
	}
}

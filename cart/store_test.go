package cart_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarsakr/SakrStore/cart"
	"github.com/omarsakr/SakrStore/models"
)

// memStorage is an in-memory Storage for tests.
type memStorage struct {
	data    map[string]string
	failSet bool
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string]string{}}
}

func (m *memStorage) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memStorage) Set(key, value string) error {
	if m.failSet {
		return errors.New("storage full")
	}
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestLoadEmptyStorage(t *testing.T) {
	store := cart.NewStore(newMemStorage())
	assert.Equal(t, models.Cart{}, store.Load())
}

func TestLoadCanonicalMapping(t *testing.T) {
	storage := newMemStorage()
	storage.data[cart.KeyCart] = `{"1":2,"7":1}`

	store := cart.NewStore(storage)
	assert.Equal(t, models.Cart{"1": 2, "7": 1}, store.Load())
}

func TestLoadDropsNonPositiveQuantities(t *testing.T) {
	storage := newMemStorage()
	storage.data[cart.KeyCart] = `{"1":2,"2":0,"3":-4}`

	store := cart.NewStore(storage)
	assert.Equal(t, models.Cart{"1": 2}, store.Load())
}

func TestLoadMigratesLegacyList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.Cart
	}{
		{"numeric identifiers", `[1,1,2]`, models.Cart{"1": 2, "2": 1}},
		{"string identifiers", `["a","a","b","a"]`, models.Cart{"a": 3, "b": 1}},
		{"empty list", `[]`, models.Cart{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMemStorage()
			storage.data[cart.KeyCart] = tt.raw
			assert.Equal(t, tt.want, cart.NewStore(storage).Load())
		})
	}
}

func TestLoadCorruptDataFailsOpen(t *testing.T) {
	storage := newMemStorage()
	storage.data[cart.KeyCart] = `{{{not json`

	store := cart.NewStore(storage)
	assert.Equal(t, models.Cart{}, store.Load())
}

func TestSetQuantityPersists(t *testing.T) {
	storage := newMemStorage()
	store := cart.NewStore(storage)

	got := store.SetQuantity(models.Cart{}, "5", 3)
	assert.Equal(t, models.Cart{"5": 3}, got)
	assert.JSONEq(t, `{"5":3}`, storage.data[cart.KeyCart])
}

func TestSetQuantityZeroRemovesEntry(t *testing.T) {
	storage := newMemStorage()
	store := cart.NewStore(storage)

	current := models.Cart{"5": 3, "6": 1}
	got := store.SetQuantity(current, "5", 0)
	assert.Equal(t, models.Cart{"6": 1}, got)

	got = store.SetQuantity(got, "6", -2)
	assert.Equal(t, models.Cart{}, got)
	assert.JSONEq(t, `{}`, storage.data[cart.KeyCart])
}

func TestSetQuantityStorageFailureKeepsCart(t *testing.T) {
	storage := newMemStorage()
	storage.failSet = true
	store := cart.NewStore(storage)

	got := store.SetQuantity(models.Cart{}, "1", 2)
	assert.Equal(t, models.Cart{"1": 2}, got)
}

func TestClear(t *testing.T) {
	storage := newMemStorage()
	storage.data[cart.KeyCart] = `{"1":2}`

	store := cart.NewStore(storage)
	store.Clear()
	assert.Equal(t, models.Cart{}, store.Load())
}

func TestAppliedCouponRoundTrip(t *testing.T) {
	storage := newMemStorage()
	store := cart.NewStore(storage)

	require.Nil(t, store.AppliedCoupon())

	store.SetAppliedCoupon(&models.Coupon{
		Code:     "SAVE10",
		Type:     models.CouponTypePercentage,
		Amount:   10,
		MinSpend: 100,
	})

	got := store.AppliedCoupon()
	require.NotNil(t, got)
	assert.Equal(t, "SAVE10", got.Code)
	assert.Equal(t, models.CouponTypePercentage, got.Type)
	assert.Equal(t, 10.0, got.Amount)
}

func TestSetAppliedCouponNilEvicts(t *testing.T) {
	storage := newMemStorage()
	store := cart.NewStore(storage)

	store.SetAppliedCoupon(&models.Coupon{Code: "SAVE10"})
	require.NotNil(t, store.AppliedCoupon())

	store.SetAppliedCoupon(nil)
	assert.Nil(t, store.AppliedCoupon())
}

func TestAppliedCouponCorruptDataFailsOpen(t *testing.T) {
	storage := newMemStorage()
	storage.data[cart.KeyAppliedCoupon] = `not json`

	store := cart.NewStore(storage)
	assert.Nil(t, store.AppliedCoupon())
}

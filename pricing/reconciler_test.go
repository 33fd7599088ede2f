package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarsakr/SakrStore/coupon"
	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/pricing"
)

func intPtr(n int) *int { return &n }

func testProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Phone Case", Price: 100, Category: "Accessories", Stock: intPtr(10)},
		{ID: "2", Name: "Charger", Price: 150, Discount: true, DiscountedPrice: 120, Category: "Accessories", Stock: intPtr(3)},
		{ID: "3", Name: "Headset", Price: 300, Category: "Audio", Stock: intPtr(0)},
		{ID: "4", Name: "Cable", Price: 50, Category: "Accessories"},
	}
}

func newReconciler(coupons []models.Coupon) *pricing.Reconciler {
	return pricing.NewReconciler(coupon.NewEngine(coupons))
}

func TestReconcileEmptyCart(t *testing.T) {
	result := newReconciler(nil).Reconcile(models.Cart{}, testProducts(), nil)

	assert.Empty(t, result.Items)
	assert.Equal(t, 0.0, result.Subtotal)
	assert.Equal(t, 0.0, result.Total)
	assert.False(t, result.CanCheckout())
}

func TestReconcilePricesLines(t *testing.T) {
	cart := models.Cart{"1": 2, "2": 1}
	result := newReconciler(nil).Reconcile(cart, testProducts(), nil)

	require.Len(t, result.Items, 2)
	assert.Equal(t, 200.0, result.Items[0].Total)
	// Discounted price applies only when the discount flag is set.
	assert.Equal(t, 120.0, result.Items[1].UnitPrice)
	assert.Equal(t, 320.0, result.Subtotal)
	assert.Equal(t, 320.0, result.Total)
	assert.True(t, result.CanCheckout())
}

func TestReconcileSkipsMissingProducts(t *testing.T) {
	cart := models.Cart{"1": 2, "999": 5}
	result := newReconciler(nil).Reconcile(cart, testProducts(), nil)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "1", result.Items[0].Product.Key())
	assert.Equal(t, 200.0, result.Subtotal)
}

func TestReconcileAppliesValidCoupon(t *testing.T) {
	coupons := []models.Coupon{{Code: "SAVE10", Type: models.CouponTypePercentage, Amount: 10}}
	cart := models.Cart{"1": 2}

	applied := &coupons[0]
	result := newReconciler(coupons).Reconcile(cart, testProducts(), applied)

	assert.False(t, result.CouponEvicted)
	assert.Equal(t, "SAVE10", result.CouponCode)
	assert.Equal(t, 20.0, result.Discount)
	assert.Equal(t, 180.0, result.Total)
}

func TestReconcileEvictsCouponBelowMinSpend(t *testing.T) {
	coupons := []models.Coupon{{Code: "SAVE10", Type: models.CouponTypePercentage, Amount: 10, MinSpend: 300}}
	applied := &coupons[0]

	// Subtotal 200 no longer meets the 300 minimum.
	result := newReconciler(coupons).Reconcile(models.Cart{"1": 2}, testProducts(), applied)

	assert.True(t, result.CouponEvicted)
	assert.Equal(t, "", result.CouponCode)
	assert.Equal(t, 0.0, result.Discount)
	assert.Equal(t, 200.0, result.Total)
}

func TestReconcileEvictsCouponMissingFromCurrentSet(t *testing.T) {
	applied := &models.Coupon{Code: "RETIRED", Type: models.CouponTypeFixed, Amount: 20}

	result := newReconciler(nil).Reconcile(models.Cart{"1": 1}, testProducts(), applied)

	assert.True(t, result.CouponEvicted)
	assert.Equal(t, 100.0, result.Total)
}

func TestReconcileStockStatuses(t *testing.T) {
	cart := models.Cart{"2": 5, "3": 1, "4": 2}
	result := newReconciler(nil).Reconcile(cart, testProducts(), nil)

	require.Len(t, result.Items, 3)
	statuses := map[string]models.StockStatus{}
	for _, item := range result.Items {
		statuses[item.Product.Key()] = item.StockStatus
	}
	assert.Equal(t, models.StockOverLimit, statuses["2"])
	assert.Equal(t, models.StockOut, statuses["3"])
	assert.Equal(t, models.StockInStock, statuses["4"])
	assert.False(t, result.CanCheckout())
}

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name  string
		stock *int
		qty   int
		want  models.StockStatus
	}{
		{"unlimited", nil, 99, models.StockInStock},
		{"out of stock", intPtr(0), 1, models.StockOut},
		{"over limit", intPtr(3), 4, models.StockOverLimit},
		{"low stock", intPtr(5), 2, models.StockLow},
		{"in stock", intPtr(20), 2, models.StockInStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Product{Stock: tt.stock}
			assert.Equal(t, tt.want, pricing.ClassifyStock(p, tt.qty))
		})
	}
}

func TestCanAdd(t *testing.T) {
	assert.True(t, pricing.CanAdd(models.Product{}, 100))
	assert.True(t, pricing.CanAdd(models.Product{Stock: intPtr(3)}, 2))
	assert.False(t, pricing.CanAdd(models.Product{Stock: intPtr(3)}, 3))
	assert.False(t, pricing.CanAdd(models.Product{Stock: intPtr(0)}, 0))
}

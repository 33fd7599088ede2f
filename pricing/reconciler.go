package pricing

import (
	"sort"

	"github.com/omarsakr/SakrStore/coupon"
	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/utils"
)

// LowStockThreshold is the stock level at or below which a line gets a
// low-stock warning.
const LowStockThreshold = 5

// Reconciler recomputes line items, subtotal, discount, and total from the
// current cart, catalog snapshot, and applied coupon. It is invoked after
// every mutation; nothing is memoized between calls.
type Reconciler struct {
	engine *coupon.Engine
}

// NewReconciler creates a reconciler using the given coupon engine for
// re-validation.
func NewReconciler(engine *coupon.Engine) *Reconciler {
	return &Reconciler{engine: engine}
}

// Reconcile prices the cart against the catalog. Cart entries referencing
// products absent from the catalog are skipped silently: the catalog always
// wins over stale local state. When the applied coupon no longer validates
// against the fresh subtotal, the result reports the eviction and carries no
// discount; the caller is responsible for clearing the persisted snapshot.
func (r *Reconciler) Reconcile(cart models.Cart, products []models.Product, applied *models.Coupon) models.PricingResult {
	result := models.PricingResult{}

	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.Key()] = p
	}

	keys := make([]string, 0, len(cart))
	for id := range cart {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	var cartProducts []models.Product
	for _, id := range keys {
		product, ok := index[id]
		if !ok {
			utils.LogDebug("Skipping cart entry %s: product not in catalog", id)
			continue
		}

		qty := cart[id]
		unitPrice := product.UnitPrice()
		line := models.LineItem{
			Product:     product,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			Total:       unitPrice * float64(qty),
			StockStatus: ClassifyStock(product, qty),
		}
		result.Items = append(result.Items, line)
		result.Subtotal += line.Total
		cartProducts = append(cartProducts, product)
	}

	result.Total = result.Subtotal

	if applied == nil {
		return result
	}

	validation := r.engine.Validate(applied.Code, result.Subtotal, cartProducts)
	if !validation.Valid {
		utils.LogInfo("Evicting applied coupon %s: %s", applied.Code, validation.Message)
		result.CouponEvicted = true
		return result
	}

	result.CouponCode = validation.Coupon.Code
	result.CouponMessage = validation.Message
	result.Discount = validation.Discount
	result.Total = result.Subtotal - validation.Discount
	return result
}

// ClassifyStock compares a desired quantity to the product's stock level.
// Products without a stock count are treated as unlimited.
func ClassifyStock(product models.Product, qty int) models.StockStatus {
	if product.Stock == nil {
		return models.StockInStock
	}
	stock := *product.Stock
	switch {
	case stock == 0:
		return models.StockOut
	case qty > stock:
		return models.StockOverLimit
	case stock <= LowStockThreshold:
		return models.StockLow
	default:
		return models.StockInStock
	}
}

// CanAdd reports whether one more unit of the product fits within its stock
// given the quantity already in the cart.
func CanAdd(product models.Product, inCart int) bool {
	if product.Stock == nil {
		return true
	}
	return inCart+1 <= *product.Stock
}

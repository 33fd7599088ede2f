package models

// StockStatus classifies a cart line against the product's stock level.
// The classification is advisory: it never blocks pricing.
type StockStatus string

const (
	StockInStock   StockStatus = "in_stock"
	StockLow       StockStatus = "low_stock"    // stock <= 5
	StockOverLimit StockStatus = "over_limit"   // quantity exceeds stock
	StockOut       StockStatus = "out_of_stock" // stock == 0
)

// LineItem is one priced cart entry.
type LineItem struct {
	Product     Product     `json:"product"`
	Quantity    int         `json:"quantity"`
	UnitPrice   float64     `json:"unit_price"`
	Total       float64     `json:"total"`
	StockStatus StockStatus `json:"stock_status"`
}

// PricingResult is the outcome of reconciling the cart against the catalog
// and the applied coupon. All amounts are raw numerics; formatting belongs
// to the presentation layer.
type PricingResult struct {
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Discount      float64    `json:"discount"`
	Total         float64    `json:"total"`
	CouponCode    string     `json:"coupon_code,omitempty"`
	CouponMessage string     `json:"coupon_message,omitempty"`
	CouponEvicted bool       `json:"coupon_evicted,omitempty"`
}

// CanCheckout reports whether every line can be fulfilled at its current
// quantity.
func (r PricingResult) CanCheckout() bool {
	if len(r.Items) == 0 {
		return false
	}
	for _, item := range r.Items {
		if item.StockStatus == StockOverLimit || item.StockStatus == StockOut {
			return false
		}
	}
	return true
}

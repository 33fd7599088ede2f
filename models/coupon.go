package models

// Coupon types
const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// CouponCategoryAll is the sentinel meaning the coupon applies to every
// category.
const CouponCategoryAll = "All"

// Coupon is a named discount rule with eligibility conditions. Codes are
// matched case-insensitively and must be unique in the feed.
type Coupon struct {
	Code        string  `json:"code"`
	Type        string  `json:"type"` // "percentage" or "fixed"
	Amount      float64 `json:"amount"`
	MinSpend    float64 `json:"minSpend"`    // 0 = no minimum
	Category    string  `json:"category"`    // "" or "All" = no restriction
	MaxDiscount float64 `json:"maxDiscount"` // percentage type only, 0 = no cap
	Enabled     *bool   `json:"enabled"`     // only an explicit false disables
	Description string  `json:"description"`
}

// Active reports whether the coupon may be redeemed. Coupons are enabled
// unless the feed explicitly disables them.
func (c Coupon) Active() bool {
	return c.Enabled == nil || *c.Enabled
}

package coupon

import (
	"fmt"
	"strings"

	"github.com/omarsakr/SakrStore/models"
)

// Result is the outcome of validating a coupon code against a cart
// snapshot. Invalid codes are expected, user-facing outcomes, not errors.
type Result struct {
	Valid    bool           `json:"valid"`
	Message  string         `json:"message"`
	Discount float64        `json:"discount"`
	Coupon   *models.Coupon `json:"coupon,omitempty"`
}

// Engine validates coupon codes and computes discounts. It is stateless:
// validation runs afresh against the current cart on every call, so an
// applied coupon can never silently go stale.
type Engine struct {
	coupons []models.Coupon
}

// NewEngine creates an engine over the session's coupon set.
func NewEngine(coupons []models.Coupon) *Engine {
	return &Engine{coupons: coupons}
}

// Validate checks a code against the current subtotal and cart products,
// short-circuiting on the first failed condition, and computes the discount
// on success. The discount never exceeds the subtotal.
func (e *Engine) Validate(code string, subtotal float64, cartProducts []models.Product) Result {
	code = strings.TrimSpace(code)
	if code == "" {
		return Result{Message: "Please enter a coupon code"}
	}

	if len(e.coupons) == 0 {
		return Result{Message: "No coupons available at this time"}
	}

	var coupon *models.Coupon
	for i := range e.coupons {
		if strings.EqualFold(e.coupons[i].Code, code) {
			coupon = &e.coupons[i]
			break
		}
	}
	if coupon == nil {
		return Result{Message: "Invalid coupon code"}
	}

	if !coupon.Active() {
		return Result{Message: "This coupon is no longer active"}
	}

	if coupon.MinSpend > 0 && subtotal < coupon.MinSpend {
		return Result{Message: fmt.Sprintf("Minimum order of EGP %.2f required", coupon.MinSpend)}
	}

	if coupon.Category != "" && coupon.Category != models.CouponCategoryAll {
		if !hasCategory(cartProducts, coupon.Category) {
			return Result{Message: fmt.Sprintf("This coupon only works for %s products", coupon.Category)}
		}
	}

	discount := computeDiscount(*coupon, subtotal)

	return Result{
		Valid:    true,
		Message:  successMessage(*coupon),
		Discount: discount,
		Coupon:   coupon,
	}
}

func hasCategory(products []models.Product, category string) bool {
	for _, p := range products {
		if p.Category != "" && strings.EqualFold(p.Category, category) {
			return true
		}
	}
	return false
}

func computeDiscount(coupon models.Coupon, subtotal float64) float64 {
	var discount float64
	switch coupon.Type {
	case models.CouponTypePercentage:
		discount = subtotal * coupon.Amount / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	case models.CouponTypeFixed:
		discount = coupon.Amount
	}

	// The discount can never push the total below zero.
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

func successMessage(coupon models.Coupon) string {
	if coupon.Description != "" {
		return coupon.Description
	}
	if coupon.Type == models.CouponTypePercentage {
		msg := fmt.Sprintf("%g%% discount applied", coupon.Amount)
		if coupon.MaxDiscount > 0 {
			msg += fmt.Sprintf(" (max EGP %.2f)", coupon.MaxDiscount)
		}
		return msg
	}
	return fmt.Sprintf("%g EGP discount applied", coupon.Amount)
}

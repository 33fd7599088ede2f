package models

import (
	"time"
)

// Customer holds the checkout form fields. There are no accounts; the
// customer exists only inside the order summary handed off for fulfillment.
type Customer struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	City          string `json:"city"`
	Governorate   string `json:"governorate"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"payment_method"`
}

// OrderSummary is the plain structured order produced at checkout. An
// external collaborator encodes it into the messaging-link payload; nothing
// is persisted server-side.
type OrderSummary struct {
	Reference  string     `json:"reference"`
	Customer   Customer   `json:"customer"`
	Items      []LineItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	Discount   float64    `json:"discount"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Total      float64    `json:"total"`
	PlacedAt   time.Time  `json:"placed_at"`
}

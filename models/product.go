package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ProductID is a product identifier as found in catalog data. Feeds may
// publish it as a JSON number or a string; both decode to the string form
// used as the cart key.
type ProductID string

// UnmarshalJSON accepts either a number or a string identifier.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*id = ProductID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())
	return nil
}

// Money is a price value decoded defensively: numbers decode as-is, numeric
// strings are parsed, anything else falls back to 0. Catalog data is not
// trusted to be well formed.
type Money float64

// UnmarshalJSON never fails; unparsable values become 0.
func (m *Money) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = Money(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*m = Money(f)
			return nil
		}
	}
	*m = 0
	return nil
}

// ProductImages holds the primary image and optional gallery.
type ProductImages struct {
	Primary string   `json:"primary"`
	Gallery []string `json:"gallery"`
}

// Product represents a catalog product. The catalog is read-only to this
// service; optional fields stay nil when absent from the feed.
type Product struct {
	ID              ProductID      `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Price           Money          `json:"price"`
	Discount        bool           `json:"discount"`
	DiscountedPrice Money          `json:"discountedPrice"`
	Stock           *int           `json:"stock"` // nil = unlimited
	Category        string         `json:"category"`
	IsNew           bool           `json:"isNew"`
	Images          *ProductImages `json:"images"`
	Image           string         `json:"image"` // legacy single-image field
}

// Key returns the product identifier in cart-key form.
func (p Product) Key() string {
	return string(p.ID)
}

// UnitPrice returns the price actually charged: the discounted price when
// the discount flag is set, the list price otherwise.
func (p Product) UnitPrice() float64 {
	if p.Discount {
		return float64(p.DiscountedPrice)
	}
	return float64(p.Price)
}

// ListPrice returns the undiscounted price.
func (p Product) ListPrice() float64 {
	return float64(p.Price)
}

// PrimaryImage returns the primary image URL, preferring the images schema
// and falling back to the legacy image field.
func (p Product) PrimaryImage() string {
	if p.Images != nil {
		if p.Images.Primary != "" {
			return p.Images.Primary
		}
		if len(p.Images.Gallery) > 0 {
			return p.Images.Gallery[0]
		}
	}
	return p.Image
}

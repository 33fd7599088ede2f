package controllers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/utils"
)

const messageDivider = "━━━━━━━━━━━━━━━━━━━━"

// buildOrderMessage renders the order summary as the plain-text message
// sent over the messaging link. The applied coupon snapshot supplies the
// human-readable discount description.
func buildOrderMessage(summary models.OrderSummary, applied *models.Coupon) string {
	parts := []string{
		"NEW ORDER - SAKR STORE",
		messageDivider,
		"",
		"CUSTOMER INFORMATION",
		fmt.Sprintf("Name: %s", summary.Customer.Name),
		fmt.Sprintf("Phone: %s", summary.Customer.Phone),
		"",
		"DELIVERY ADDRESS",
		fmt.Sprintf("Street: %s", summary.Customer.Street),
		fmt.Sprintf("City: %s", summary.Customer.City),
		fmt.Sprintf("Governorate: %s", summary.Customer.Governorate),
	}

	if summary.Customer.Notes != "" {
		parts = append(parts, fmt.Sprintf("Notes: %s", summary.Customer.Notes))
	}

	parts = append(parts,
		"",
		"PAYMENT METHOD",
		summary.Customer.PaymentMethod,
		"",
		"ORDER DETAILS",
		messageDivider,
	)

	for _, item := range summary.Items {
		parts = append(parts, fmt.Sprintf("- %dx %s - %s %.2f",
			item.Quantity, item.Product.Name, utils.Currency, item.Total))
	}

	parts = append(parts,
		messageDivider,
		"",
		fmt.Sprintf("Subtotal: %s %.2f", utils.Currency, summary.Subtotal),
	)

	if applied != nil && summary.Discount > 0 {
		discountType := fmt.Sprintf("%g EGP off", applied.Amount)
		if applied.Type == models.CouponTypePercentage {
			discountType = fmt.Sprintf("%g%% off", applied.Amount)
		}
		parts = append(parts, fmt.Sprintf("Discount (%s - %s): -%s %.2f",
			applied.Code, discountType, utils.Currency, summary.Discount))
	}

	parts = append(parts,
		fmt.Sprintf("TOTAL: %s %.2f", utils.Currency, summary.Total),
		"",
		fmt.Sprintf("Order Ref: %s", summary.Reference),
		fmt.Sprintf("Order Date: %s", summary.PlacedAt.Format("Jan 2, 2006 3:04 PM")),
	)

	return strings.Join(parts, "\n")
}

// whatsAppURL builds the wa.me link carrying the encoded order message.
// Spaces are percent-encoded; wa.me renders "+" literally.
func whatsAppURL(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encoded)
}

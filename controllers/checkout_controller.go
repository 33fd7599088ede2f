package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/omarsakr/SakrStore/analytics"
	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/utils"
)

// CheckoutRequest represents the checkout form fields
type CheckoutRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Street      string `json:"street" binding:"required"`
	City        string `json:"city" binding:"required"`
	Governorate string `json:"governorate" binding:"required"`
	Notes       string `json:"notes"`
	Payment     string `json:"payment" binding:"required"`
}

// Checkout validates the customer form, reconciles the cart one final time,
// and produces the order summary plus the messaging handoff URL. The cart
// is deliberately not cleared: the shopper may abandon the handoff without
// sending, and keeps their cart.
func Checkout(c *gin.Context) {
	utils.LogInfo("Checkout called")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid checkout request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if ok, msg := utils.ValidateName(req.Name); !ok {
		utils.ValidationError(c, msg, nil)
		return
	}
	if ok, msg := utils.ValidateEgyptianPhone(req.Phone); !ok {
		utils.ValidationError(c, msg, nil)
		return
	}
	if ok, msg := utils.ValidateNotes(req.Notes); !ok {
		utils.ValidationError(c, msg, nil)
		return
	}

	store := cartStore(c)
	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}
	if len(result.Items) == 0 {
		utils.LogInfo("Checkout attempted with empty cart")
		utils.BadRequest(c, "Your cart is empty. Add products before placing an order.", nil)
		return
	}

	summary := models.OrderSummary{
		Reference: uuid.New().String(),
		Customer: models.Customer{
			Name:          req.Name,
			Phone:         utils.NormalizePhone(req.Phone),
			Street:        req.Street,
			City:          req.City,
			Governorate:   req.Governorate,
			Notes:         req.Notes,
			PaymentMethod: req.Payment,
		},
		Items:      result.Items,
		Subtotal:   result.Subtotal,
		Discount:   result.Discount,
		CouponCode: result.CouponCode,
		Total:      result.Total,
		PlacedAt:   time.Now(),
	}

	message := buildOrderMessage(summary, store.AppliedCoupon())
	handoffURL := whatsAppURL(app.WhatsAppNumber, message)
	utils.LogInfo("Order %s ready for handoff, total %.2f", summary.Reference, summary.Total)

	dispatchCheckoutEvents(summary, req)

	utils.Success(c, utils.MsgOrderReady, gin.H{
		"order":        summary,
		"message":      message,
		"whatsapp_url": handoffURL,
		"subtotal":     fmt.Sprintf("%.2f", summary.Subtotal),
		"discount":     fmt.Sprintf("%.2f", summary.Discount),
		"total":        fmt.Sprintf("%.2f", summary.Total),
	})
}

// dispatchCheckoutEvents sends the funnel events best-effort.
func dispatchCheckoutEvents(summary models.OrderSummary, req CheckoutRequest) {
	items := make([]analytics.Item, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, analyticsItem(item))
	}

	base := map[string]interface{}{
		"currency": utils.Currency,
		"value":    summary.Total,
		"items":    items,
	}

	app.Analytics.DispatchAsync(analytics.Event{Name: "begin_checkout", Params: base})

	shipping := map[string]interface{}{
		"currency":      utils.Currency,
		"value":         summary.Total,
		"shipping_tier": req.Governorate,
		"items":         items,
	}
	app.Analytics.DispatchAsync(analytics.Event{Name: "add_shipping_info", Params: shipping})

	payment := map[string]interface{}{
		"currency":     utils.Currency,
		"value":        summary.Total,
		"payment_type": req.Payment,
		"items":        items,
	}
	app.Analytics.DispatchAsync(analytics.Event{Name: "add_payment_info", Params: payment})
}

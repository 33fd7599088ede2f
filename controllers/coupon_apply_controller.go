package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/utils"
)

// ApplyCouponRequest represents the request body for applying a coupon
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon validates a coupon code against the current cart and, on
// success, persists the coupon snapshot for this device session. At most
// one coupon is applied at a time.
func ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid coupon request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogInfo("Attempting to apply coupon code: %s", req.Code)

	store := cartStore(c)
	if existing := store.AppliedCoupon(); existing != nil {
		utils.LogInfo("Coupon %s already applied", existing.Code)
		utils.BadRequest(c, "Please remove the current coupon first", nil)
		return
	}

	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}
	if len(result.Items) == 0 {
		utils.BadRequest(c, utils.ErrCartEmpty, nil)
		return
	}

	cartProducts := make([]models.Product, 0, len(result.Items))
	for _, item := range result.Items {
		cartProducts = append(cartProducts, item.Product)
	}

	engine := couponEngine(c)
	validation := engine.Validate(req.Code, result.Subtotal, cartProducts)
	if !validation.Valid {
		utils.LogInfo("Coupon %s rejected: %s", req.Code, validation.Message)
		utils.BadRequest(c, validation.Message, nil)
		return
	}

	// Persist the full coupon snapshot taken at apply time; reconciliation
	// re-validates it against the live cart from here on.
	store.SetAppliedCoupon(validation.Coupon)
	utils.LogInfo("Applied coupon %s, discount %.2f", validation.Coupon.Code, validation.Discount)

	utils.Success(c, validation.Message, gin.H{
		"coupon_code": validation.Coupon.Code,
		"discount":    fmt.Sprintf("%.2f", validation.Discount),
		"subtotal":    fmt.Sprintf("%.2f", result.Subtotal),
		"total":       fmt.Sprintf("%.2f", result.Subtotal-validation.Discount),
	})
}

package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/utils"
)

// RemoveCoupon clears the applied coupon snapshot and returns the cart
// totals without any discount.
func RemoveCoupon(c *gin.Context) {
	utils.LogInfo("RemoveCoupon called")

	store := cartStore(c)
	store.SetAppliedCoupon(nil)

	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}

	utils.Success(c, utils.MsgCouponRemoved, cartSummary(result))
}

package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/utils"
)

// GetCart returns the reconciled cart: line items priced against the
// current catalog, the subtotal, any coupon discount, and the total. The
// applied coupon is re-validated as part of reconciliation and evicted if
// the cart no longer qualifies.
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	store := cartStore(c)
	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}

	summary := cartSummary(result)
	if result.CouponEvicted {
		summary["coupon_evicted"] = true
		utils.LogInfo("Applied coupon evicted during cart read")
	}
	if result.CouponMessage != "" {
		summary["coupon_message"] = result.CouponMessage
	}

	utils.Success(c, "Cart retrieved", summary)
}

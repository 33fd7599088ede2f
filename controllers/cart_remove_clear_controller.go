package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/utils"
)

// RemoveFromCart removes a product from the cart entirely.
func RemoveFromCart(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("RemoveFromCart called for product ID: %s", productID)

	store := cartStore(c)
	store.SetQuantity(store.Load(), productID, 0)

	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}

	utils.Success(c, utils.MsgCartUpdated, cartSummary(result))
}

// ClearCart removes every cart entry. The applied coupon is left in place;
// the next reconciliation evicts it if the empty cart no longer qualifies.
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	store := cartStore(c)
	store.Clear()

	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}

	utils.Success(c, utils.MsgCartCleared, cartSummary(result))
}

package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/catalog"
	"github.com/omarsakr/SakrStore/utils"
)

// UpdateCartRequest represents the request body for setting a quantity
type UpdateCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

// UpdateCart sets the quantity of a cart entry. A quantity of zero removes
// the entry. Increases are gated on available stock; decreases and removals
// always succeed, even for products no longer in the catalog.
func UpdateCart(c *gin.Context) {
	utils.LogInfo("UpdateCart called")

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cart update request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	qty := *req.Quantity
	if ok, msg := utils.ValidateQuantity(qty); !ok {
		utils.ValidationError(c, msg, nil)
		return
	}
	utils.LogInfo("Setting quantity for product ID: %s to %d", req.ProductID, qty)

	store := cartStore(c)
	current := store.Load()
	currentQty := current[req.ProductID]

	// Stock gating only applies when the quantity grows.
	if qty > currentQty {
		products, err := app.Catalog.Products(c.Request.Context())
		if err != nil {
			catalogError(c, err)
			return
		}
		product, ok := catalog.Lookup(products, req.ProductID)
		if !ok {
			utils.LogError("Product not found: %s", req.ProductID)
			utils.NotFound(c, utils.ErrProductNotFound)
			return
		}
		if product.Stock != nil && qty > *product.Stock {
			utils.LogInfo("Stock limit for product %s: requested %d, available %d",
				req.ProductID, qty, *product.Stock)
			utils.BadRequest(c, fmt.Sprintf("Sorry, only %d items available in stock", *product.Stock), nil)
			return
		}
	}

	store.SetQuantity(current, req.ProductID, qty)
	if qty <= 0 {
		utils.LogInfo("Removed product %s from cart", req.ProductID)
	}

	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}

	utils.Success(c, utils.MsgCartUpdated, cartSummary(result))
}

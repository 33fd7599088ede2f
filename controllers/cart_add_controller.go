package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/analytics"
	"github.com/omarsakr/SakrStore/catalog"
	"github.com/omarsakr/SakrStore/pricing"
	"github.com/omarsakr/SakrStore/utils"
)

// AddToCartRequest represents the request body for adding a product
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AddToCart adds a product to the device cart, gating on stock. The store
// itself enforces no cap; the stock check is this caller's responsibility.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid add to cart request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	utils.LogInfo("Adding product ID: %s with quantity: %d", req.ProductID, req.Quantity)

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

	store := cartStore(c)
	current := store.Load()
	currentQty := current[req.ProductID]

	if product.Stock != nil {
		if *product.Stock == 0 {
			utils.LogInfo("Product %s is out of stock", req.ProductID)
			utils.BadRequest(c, "This product is out of stock", nil)
			return
		}
		if currentQty+req.Quantity > *product.Stock {
			utils.LogInfo("Stock limit for product %s: requested %d, available %d",
				req.ProductID, currentQty+req.Quantity, *product.Stock)
			utils.BadRequest(c, fmt.Sprintf("Only %d available in stock", *product.Stock), nil)
			return
		}
	}

	current = store.SetQuantity(current, req.ProductID, currentQty+req.Quantity)
	utils.LogInfo("Cart now holds %d of product %s (%d units total)",
		current[req.ProductID], req.ProductID, current.TotalItems())

	app.Analytics.DispatchAsync(analytics.Event{
		Name: "add_to_cart",
		Params: map[string]interface{}{
			"currency": utils.Currency,
			"value":    product.UnitPrice(),
			"items": []analytics.Item{{
				ItemID:       product.Key(),
				ItemName:     product.Name,
				ItemCategory: categoryOrDefault(product.Category),
				Price:        product.UnitPrice(),
				Quantity:     req.Quantity,
			}},
		},
	})

	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}

	summary := cartSummary(result)
	summary["can_add_more"] = pricing.CanAdd(product, current[req.ProductID])
	utils.Success(c, utils.MsgAddedToCart, summary)
}

func categoryOrDefault(category string) string {
	if category == "" {
		return "Uncategorized"
	}
	return category
}

package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/catalog"
	"github.com/omarsakr/SakrStore/pricing"
	"github.com/omarsakr/SakrStore/utils"
)

// GetProduct returns the details for a single product, including the
// quantity already in this device's cart and whether more can be added.
func GetProduct(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("GetProduct called for product ID: %s", productID)

	products, err := app.Catalog.Products(c.Request.Context())
	if err != nil {
		catalogError(c, err)
		return
	}

	product, ok := catalog.Lookup(products, productID)
	if !ok {
		utils.LogError("Product not found: %s", productID)
		utils.NotFound(c, utils.ErrProductNotFound)
		return
	}

	inCart := cartStore(c).Load()[productID]

	item := gin.H{
		"id":           product.Key(),
		"name":         product.Name,
		"name_dir":     utils.TextDirection(product.Name),
		"lang":         utils.LanguageCode(product.Name),
		"description":  product.Description,
		"desc_dir":     utils.TextDirection(product.Description),
		"price":        fmt.Sprintf("%.2f", product.ListPrice()),
		"discount":     product.Discount,
		"is_new":       product.IsNew,
		"category":     product.Category,
		"image":        product.PrimaryImage(),
		"in_cart":      inCart,
		"can_add":      pricing.CanAdd(product, inCart),
		"stock_status": pricing.ClassifyStock(product, inCart),
	}
	if product.Discount {
		item["discounted_price"] = fmt.Sprintf("%.2f", product.UnitPrice())
	}
	if product.Images != nil && len(product.Images.Gallery) > 0 {
		item["gallery"] = product.Images.Gallery
	}
	if product.Stock != nil {
		item["stock"] = *product.Stock
	}

	utils.Success(c, "Product retrieved", item)
}

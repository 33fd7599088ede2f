package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/catalog"
	"github.com/omarsakr/SakrStore/filtering"
	"github.com/omarsakr/SakrStore/utils"
)

// ProductListRequest represents the request parameters for listing products
type ProductListRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
	MaxPrice string `form:"max_price"`
}

// GetProducts handles product listing with search, category, price ceiling,
// and sort order applied in the storefront's display pipeline.
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called with query params: %v", c.Request.URL.Query())

	var req ProductListRequest
	req.Search = c.Query("search")
	req.Category = c.DefaultQuery("category", "All")
	req.Sort = c.DefaultQuery("sort", "default")
	req.MaxPrice = c.Query("max_price")

	var priceCeiling *float64
	if req.MaxPrice != "" {
		ceiling, err := strconv.ParseFloat(req.MaxPrice, 64)
		if err != nil {
			utils.LogError("Invalid max_price %q: %v", req.MaxPrice, err)
			utils.BadRequest(c, "Invalid max_price", nil)
			return
		}
		priceCeiling = &ceiling
	}

	products, err := app.Catalog.Products(c.Request.Context())
	if err != nil {
		catalogError(c, err)
		return
	}

	projected := filtering.Project(products, req.Search, req.Category, req.Sort, priceCeiling)
	utils.LogInfo("Projected %d of %d products (category=%s, sort=%s)",
		len(projected), len(products), req.Category, req.Sort)

	items := make([]gin.H, 0, len(projected))
	for _, p := range projected {
		item := gin.H{
			"id":          p.Key(),
			"name":        p.Name,
			"name_dir":    utils.TextDirection(p.Name),
			"description": utils.Truncate(p.Description, utils.MaxCardDescriptionLength),
			"desc_dir":    utils.TextDirection(p.Description),
			"price":       fmt.Sprintf("%.2f", p.ListPrice()),
			"discount":    p.Discount,
			"is_new":      p.IsNew,
			"category":    p.Category,
			"image":       p.PrimaryImage(),
		}
		if p.Discount {
			item["discounted_price"] = fmt.Sprintf("%.2f", p.UnitPrice())
		}
		if p.Stock != nil {
			item["stock"] = *p.Stock
		}
		items = append(items, item)
	}

	utils.Success(c, "Products retrieved", gin.H{
		"products": items,
		"count":    len(items),
		"empty":    len(items) == 0,
		"filters": gin.H{
			"search":    req.Search,
			"category":  req.Category,
			"sort":      req.Sort,
			"max_price": req.MaxPrice,
		},
	})
}

// GetCategories returns the category sidebar entries: the pseudo categories
// first, then real categories in catalog order, plus the price slider range
// for the selected category.
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	products, err := app.Catalog.Products(c.Request.Context())
	if err != nil {
		catalogError(c, err)
		return
	}

	selected := c.DefaultQuery("category", "All")
	utils.Success(c, "Categories retrieved", gin.H{
		"categories": catalog.Categories(products),
		"max_price":  filtering.MaxListPrice(products, selected),
	})
}

package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/analytics"
	"github.com/omarsakr/SakrStore/cart"
	"github.com/omarsakr/SakrStore/catalog"
	"github.com/omarsakr/SakrStore/coupon"
	"github.com/omarsakr/SakrStore/models"
	"github.com/omarsakr/SakrStore/pricing"
	"github.com/omarsakr/SakrStore/utils"
)

// App holds the session-scoped collaborators the controllers call into.
// It is constructed once in main and torn down with the process; nothing
// here is hidden module state.
type App struct {
	Catalog        *catalog.Cache
	Coupons        *catalog.CouponSource
	Analytics      *analytics.Dispatcher
	WhatsAppNumber string
}

var app *App

// Init wires the controllers to their collaborators.
func Init(a *App) {
	app = a
}

// cartStore returns the cart store bound to this request's device session.
func cartStore(c *gin.Context) *cart.Store {
	return cart.NewStore(utils.NewSessionStorage(c))
}

// couponEngine builds the engine over the session's coupon set.
func couponEngine(c *gin.Context) *coupon.Engine {
	return coupon.NewEngine(app.Coupons.Coupons(c.Request.Context()))
}

// reconciler builds the pricing reconciler over the session's coupon set.
func reconciler(c *gin.Context) *pricing.Reconciler {
	return pricing.NewReconciler(couponEngine(c))
}

// catalogError maps a catalog failure onto the response, honoring the
// status carried by an AppError.
func catalogError(c *gin.Context, err error) {
	if appErr := utils.GetAppError(err); appErr != nil {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}
	utils.ServiceUnavailable(c, utils.ErrCatalogLoad, nil)
}

// reconcileCart loads the catalog, prices the current cart, and evicts the
// applied coupon from the session when re-validation failed.
func reconcileCart(c *gin.Context, store *cart.Store) (models.PricingResult, error) {
	products, err := app.Catalog.Products(c.Request.Context())
	if err != nil {
		return models.PricingResult{}, err
	}

	result := reconciler(c).Reconcile(store.Load(), products, store.AppliedCoupon())
	if result.CouponEvicted {
		store.SetAppliedCoupon(nil)
	}
	return result, nil
}

// cartSummary renders a pricing result in the response shape shared by all
// cart mutations.
func cartSummary(result models.PricingResult) gin.H {
	items := make([]gin.H, 0, len(result.Items))
	for _, item := range result.Items {
		p := item.Product
		items = append(items, gin.H{
			"product_id":   p.Key(),
			"name":         p.Name,
			"name_dir":     utils.TextDirection(p.Name),
			"image":        p.PrimaryImage(),
			"quantity":     item.Quantity,
			"unit_price":   fmt.Sprintf("%.2f", item.UnitPrice),
			"list_price":   fmt.Sprintf("%.2f", p.ListPrice()),
			"discounted":   p.Discount,
			"item_total":   fmt.Sprintf("%.2f", item.Total),
			"stock_status": item.StockStatus,
		})
	}

	return gin.H{
		"items":        items,
		"total_items":  totalQuantity(result.Items),
		"subtotal":     fmt.Sprintf("%.2f", result.Subtotal),
		"discount":     fmt.Sprintf("%.2f", result.Discount),
		"coupon_code":  result.CouponCode,
		"total":        fmt.Sprintf("%.2f", result.Total),
		"can_checkout": result.CanCheckout(),
	}
}

func totalQuantity(items []models.LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// analyticsItem converts a line item into the analytics payload shape.
func analyticsItem(item models.LineItem) analytics.Item {
	p := item.Product
	return analytics.Item{
		ItemID:       p.Key(),
		ItemName:     p.Name,
		ItemCategory: categoryOrDefault(p.Category),
		Price:        item.UnitPrice,
		Quantity:     item.Quantity,
	}
}

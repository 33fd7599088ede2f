package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/omarsakr/SakrStore/config"
	"github.com/omarsakr/SakrStore/controllers"
	"github.com/omarsakr/SakrStore/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Session middleware backs the device-local cart and coupon state
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * cfg.SessionMaxAgeHours,
		Path:     "/",
		Secure:   cfg.Env == "production",
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("sakrstore", store))

	router.GET("/health", func(c *gin.Context) {
		if err := utils.CheckSessionStore(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	api := router.Group("/" + utils.APIVersion)
	{
		initCatalogRoutes(api)
		initCartRoutes(api)
		initCheckoutRoutes(api)
	}

	return router
}

func initCatalogRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/:id", controllers.GetProduct)
	}
	router.GET("/categories", controllers.GetCategories)
}

func initCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/add", controllers.AddToCart)
		cart.PUT("/update", controllers.UpdateCart)
		cart.DELETE("/item/:id", controllers.RemoveFromCart)
		cart.DELETE("", controllers.ClearCart)
		cart.POST("/coupon", controllers.ApplyCoupon)
		cart.DELETE("/coupon", controllers.RemoveCoupon)
	}
}

func initCheckoutRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	{
		checkout.POST("", controllers.Checkout)
		checkout.GET("/summary/pdf", controllers.DownloadOrderSummary)
	}
}

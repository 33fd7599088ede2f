package utils

// Application constants
const (
	// Application name
	AppName = "SakrStore"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Display currency; the core returns raw numerics and the
	// presentation layer formats them
	Currency = "EGP"

	// Maximum length for order notes
	MaxNotesLength = 200

	// Maximum description length shown on product cards before truncation
	MaxCardDescriptionLength = 50
)

// Error messages
const (
	ErrCartEmpty       = "Your cart is empty"
	ErrProductNotFound = "Product not found"
	ErrCatalogLoad     = "Failed to load products"
	ErrInternalServer  = "Internal server error"
)

// Success messages
const (
	MsgAddedToCart   = "Item added to cart"
	MsgCartUpdated   = "Cart updated"
	MsgCartCleared   = "Cart cleared"
	MsgCouponRemoved = "Coupon removed"
	MsgOrderReady    = "Order ready for handoff"
)

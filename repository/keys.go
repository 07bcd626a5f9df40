package repository

// Storage key names. Every key is namespaced ("quickbasket_cart" and so
// on). No versioning or migration exists for these formats; a shape change
// requires a manual reset.
const (
	keyCart             = "cart"
	keyUsers            = "users"
	keyCurrentUser      = "current_user"
	keyWishlist         = "wishlist"
	keyDeliveryLocation = "delivery_location"
	keySearchHistory    = "search_history"
	keyAddresses        = "addresses"
	keyOrders           = "orders"
	keyCheckout         = "checkout"
)

func storageKey(namespace, name string) string {
	return namespace + "_" + name
}

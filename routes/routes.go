package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/controllers"
)

// Register wires every storefront route group onto the router.
func Register(
	r *gin.Engine,
	cart *controllers.CartController,
	wishlist *controllers.WishlistController,
	auth *controllers.AuthController,
	location *controllers.LocationController,
	search *controllers.SearchController,
	catalog *controllers.CatalogController,
) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cart.GetCart)
		cartGroup.POST("/items", cart.AddItem)
		cartGroup.DELETE("/items/:item_id", cart.RemoveItem)
		cartGroup.PUT("/items/:item_id", cart.UpdateQuantity)
		cartGroup.POST("/items/:item_id/increase", cart.IncreaseQuantity)
		cartGroup.POST("/items/:item_id/decrease", cart.DecreaseQuantity)
		cartGroup.DELETE("/clear", cart.ClearCart)
		cartGroup.POST("/coupon", cart.ApplyCoupon)
		cartGroup.DELETE("/coupon", cart.RemoveCoupon)
		cartGroup.POST("/validate", cart.ValidateCart)
		cartGroup.POST("/checkout", cart.Checkout)
	}

	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.GET("/", wishlist.GetWishlist)
		wishlistGroup.POST("/items", wishlist.AddItem)
		wishlistGroup.DELETE("/items", wishlist.RemoveItem)
		wishlistGroup.POST("/toggle", wishlist.ToggleItem)
		wishlistGroup.POST("/add-all-to-cart", wishlist.AddAllToCart)
		wishlistGroup.DELETE("/clear", wishlist.ClearWishlist)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/me", auth.Me)
		authGroup.PUT("/profile", auth.UpdateProfile)
		authGroup.GET("/addresses", auth.ListAddresses)
		authGroup.POST("/addresses", auth.AddAddress)
		authGroup.DELETE("/addresses/:address_id", auth.RemoveAddress)
		authGroup.GET("/orders", auth.ListOrders)
	}

	locationGroup := r.Group("/location")
	{
		locationGroup.GET("/", location.Current)
		locationGroup.GET("/areas", location.Areas)
		locationGroup.GET("/search", location.Search)
		locationGroup.POST("/select", location.Select)
		locationGroup.POST("/confirm", location.Confirm)
		locationGroup.GET("/locate", location.Locate)
		locationGroup.POST("/geolocation-error", location.GeolocationError)
	}

	searchGroup := r.Group("/search")
	{
		searchGroup.GET("/", search.Search)
		searchGroup.GET("/suggestions", search.Suggestions)
		searchGroup.GET("/history", search.History)
		searchGroup.POST("/history", search.AddToHistory)
		searchGroup.DELETE("/history/item", search.RemoveFromHistory)
		searchGroup.DELETE("/history", search.ClearHistory)
	}

	productGroup := r.Group("/products")
	{
		productGroup.GET("/", catalog.ListProducts)
		productGroup.GET("/featured", catalog.Featured)
		productGroup.GET("/popular", catalog.Popular)
		productGroup.GET("/on-sale", catalog.OnSale)
		productGroup.GET("/new", catalog.New)
		productGroup.GET("/categories", catalog.ListCategories)
		productGroup.GET("/brands", catalog.ListBrands)
		productGroup.GET("/:product_id", catalog.GetProduct)
		productGroup.GET("/:product_id/similar", catalog.SimilarProducts)
	}
}

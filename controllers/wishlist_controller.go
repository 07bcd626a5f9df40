package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

type WishlistController struct {
	Wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{Wishlist: wishlist}
}

// GetWishlist returns the saved entries.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": wc.Wishlist.Items(),
		"count": wc.Wishlist.Count(),
	})
}

// AddItem saves an entry unless already present.
func (wc *WishlistController) AddItem(c *gin.Context) {
	var entry models.WishlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	added, err := wc.Wishlist.Add(c.Request.Context(), entry)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "count": wc.Wishlist.Count()})
}

// RemoveItem deletes the matching entry.
func (wc *WishlistController) RemoveItem(c *gin.Context) {
	var entry models.WishlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := wc.Wishlist.Remove(c.Request.Context(), entry); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": wc.Wishlist.Count()})
}

// ToggleItem flips an entry's presence.
func (wc *WishlistController) ToggleItem(c *gin.Context) {
	var entry models.WishlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	present, err := wc.Wishlist.Toggle(c.Request.Context(), entry)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"present": present, "count": wc.Wishlist.Count()})
}

// AddAllToCart moves all entries into the cart.
func (wc *WishlistController) AddAllToCart(c *gin.Context) {
	if err := wc.Wishlist.AddAllToCart(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": wc.Wishlist.Count()})
}

// ClearWishlist wipes the list. The request must carry confirm=true.
func (wc *WishlistController) ClearWishlist(c *gin.Context) {
	var input struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := wc.Wishlist.Clear(c.Request.Context(), input.Confirm); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": 0})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GetCart returns the cart contents with derived totals.
func (cc *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// AddItem puts a product in the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := cc.Cart.AddItem(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// RemoveItem deletes one line by id.
func (cc *CartController) RemoveItem(c *gin.Context) {
	if err := cc.Cart.RemoveItem(c.Request.Context(), c.Param("item_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// UpdateQuantity sets a line quantity; zero removes the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := cc.Cart.UpdateQuantity(c.Request.Context(), c.Param("item_id"), input.Quantity); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// IncreaseQuantity bumps a line by one.
func (cc *CartController) IncreaseQuantity(c *gin.Context) {
	if err := cc.Cart.IncreaseQuantity(c.Request.Context(), c.Param("item_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// DecreaseQuantity lowers a line by one, removing it at zero.
func (cc *CartController) DecreaseQuantity(c *gin.Context) {
	if err := cc.Cart.DecreaseQuantity(c.Request.Context(), c.Param("item_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// ClearCart empties the items, leaving any coupon applied.
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.Cart.ClearCart(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// ApplyCoupon validates and applies a coupon code.
func (cc *CartController) ApplyCoupon(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	applied, err := cc.Cart.ApplyCoupon(c.Request.Context(), input.Code)
	if err != nil {
		c.Error(err)
		return
	}
	if !applied {
		c.Error(apperrors.ErrInvalidCoupon)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// RemoveCoupon drops the applied coupon.
func (cc *CartController) RemoveCoupon(c *gin.Context) {
	if err := cc.Cart.RemoveCoupon(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cc.Cart.Summary())
}

// ValidateCart runs the stock and price checks.
func (cc *CartController) ValidateCart(c *gin.Context) {
	validation, err := cc.Cart.ValidateCart(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, validation)
}

// Checkout validates the cart and snapshots it for the checkout flow.
func (cc *CartController) Checkout(c *gin.Context) {
	snapshot, err := cc.Cart.ProceedToCheckout(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

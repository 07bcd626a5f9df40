package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Register creates an account and logs it in.
func (ac *AuthController) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, err := ac.Auth.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login authenticates by email and password.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, err := ac.Auth.Login(c.Request.Context(), input.Email, input.Password, input.RememberMe)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout clears the session.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Auth.Logout(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out"})
}

// Me returns the logged-in user, or 401.
func (ac *AuthController) Me(c *gin.Context) {
	user := ac.Auth.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile edits the logged-in user's details.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, err := ac.Auth.UpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListAddresses returns the saved addresses, newest first.
func (ac *AuthController) ListAddresses(c *gin.Context) {
	addresses, err := ac.Auth.Addresses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// AddAddress saves a new address.
func (ac *AuthController) AddAddress(c *gin.Context) {
	var input struct {
		Label string `json:"label"`
		Line  string `json:"line"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	address, err := ac.Auth.AddAddress(c.Request.Context(), input.Label, input.Line)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

// RemoveAddress deletes a saved address.
func (ac *AuthController) RemoveAddress(c *gin.Context) {
	if err := ac.Auth.RemoveAddress(c.Request.Context(), c.Param("address_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address removed"})
}

// ListOrders returns the order history.
func (ac *AuthController) ListOrders(c *gin.Context) {
	orders, err := ac.Auth.Orders(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

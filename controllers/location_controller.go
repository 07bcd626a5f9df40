package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

type LocationController struct {
	Location *services.LocationService
}

func NewLocationController(location *services.LocationService) *LocationController {
	return &LocationController{Location: location}
}

// Current returns the confirmed delivery location.
func (lc *LocationController) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"location": lc.Location.Current()})
}

// Areas returns the full service-area list.
func (lc *LocationController) Areas(c *gin.Context) {
	c.JSON(http.StatusOK, lc.Location.Areas())
}

// Search matches areas by name or zip.
func (lc *LocationController) Search(c *gin.Context) {
	c.JSON(http.StatusOK, lc.Location.Search(c.Query("q")))
}

// Select stages a location for confirmation.
func (lc *LocationController) Select(c *gin.Context) {
	var input struct {
		Location  string `json:"location"`
		Available bool   `json:"available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	lc.Location.Select(input.Location, input.Available)
	c.JSON(http.StatusOK, lc.Location.Selected())
}

// Confirm commits the staged or manually entered location.
func (lc *LocationController) Confirm(c *gin.Context) {
	var input struct {
		Input string `json:"input"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	location, err := lc.Location.Confirm(c.Request.Context(), input.Input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": location})
}

// GeolocationError records a device geolocation failure and returns the
// warning to show.
func (lc *LocationController) GeolocationError(c *gin.Context) {
	var input struct {
		Kind string `json:"kind"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": lc.Location.ReportGeolocationFailure(input.Kind)})
}

// Locate reverse geocodes coordinates and stages the nearest serviceable
// area.
func (lc *LocationController) Locate(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	selected, err := lc.Location.LocateAndSelect(c.Request.Context(), lat, lon)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, selected)
}

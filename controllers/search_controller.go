package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

type SearchController struct {
	Service *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{Service: search}
}

// Search runs a catalog search and records the query.
func (sc *SearchController) Search(c *gin.Context) {
	filters := models.ProductFilters{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
	}
	if brands, ok := c.GetQueryArray("brand"); ok {
		filters.Brands = brands
	}
	if rating := c.Query("minRating"); rating != "" {
		if v, err := strconv.ParseFloat(rating, 64); err == nil {
			filters.MinRating = v
		}
	}

	results := sc.Service.Search(c.Request.Context(), c.Query("q"), filters)
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// Suggestions returns search suggestions for a partial query.
func (sc *SearchController) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Service.Suggestions(c.Query("q"), 5))
}

// History returns recent queries, most recent first.
func (sc *SearchController) History(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Service.History())
}

// AddToHistory records a query without running a search.
func (sc *SearchController) AddToHistory(c *gin.Context) {
	var input struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sc.Service.AddToHistory(c.Request.Context(), input.Query)
	c.JSON(http.StatusOK, sc.Service.History())
}

// RemoveFromHistory drops one query.
func (sc *SearchController) RemoveFromHistory(c *gin.Context) {
	var input struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sc.Service.RemoveFromHistory(c.Request.Context(), input.Query)
	c.JSON(http.StatusOK, sc.Service.History())
}

// ClearHistory wipes the recorded queries.
func (sc *SearchController) ClearHistory(c *gin.Context) {
	sc.Service.ClearHistory(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Search history cleared"})
}

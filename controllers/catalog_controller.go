package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// ListProducts returns the catalog, optionally filtered and sorted.
func (cc *CatalogController) ListProducts(c *gin.Context) {
	filters := models.ProductFilters{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
	}
	if brands, ok := c.GetQueryArray("brand"); ok {
		filters.Brands = brands
	}
	if availability, ok := c.GetQueryArray("availability"); ok {
		filters.Availability = availability
	}
	if tags, ok := c.GetQueryArray("tag"); ok {
		filters.Tags = tags
	}
	if rating := c.Query("minRating"); rating != "" {
		if v, err := strconv.ParseFloat(rating, 64); err == nil {
			filters.MinRating = v
		}
	}
	if min := c.Query("minPrice"); min != "" {
		if v, err := strconv.ParseFloat(min, 64); err == nil {
			price := models.MoneyFromFloat(v)
			filters.MinPrice = &price
		}
	}
	if max := c.Query("maxPrice"); max != "" {
		if v, err := strconv.ParseFloat(max, 64); err == nil {
			price := models.MoneyFromFloat(v)
			filters.MaxPrice = &price
		}
	}

	results := cc.Catalog.SearchProducts(c.Query("q"), filters)
	results = cc.Catalog.SortProducts(results, c.DefaultQuery("sort", models.SortRelevance))
	c.JSON(http.StatusOK, gin.H{"products": results, "count": len(results)})
}

// GetProduct returns one product by id.
func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, ok := cc.Catalog.GetProductByID(c.Param("product_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product":     product,
		"stockStatus": cc.Catalog.StockStatus(product.ID),
	})
}

// SimilarProducts returns products sharing a category or brand.
func (cc *CatalogController) SimilarProducts(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.SimilarProducts(c.Param("product_id"), 4))
}

// ListCategories returns all categories with their subcategories.
func (cc *CatalogController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.Categories())
}

// ListBrands returns all brands.
func (cc *CatalogController) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.Brands())
}

// Featured returns highly rated or new products.
func (cc *CatalogController) Featured(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.FeaturedProducts(8))
}

// Popular returns top rated products.
func (cc *CatalogController) Popular(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.PopularProducts(6))
}

// OnSale returns discounted products.
func (cc *CatalogController) OnSale(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.OnSaleProducts(10))
}

// New returns recently added products.
func (cc *CatalogController) New(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.NewProducts(6))
}

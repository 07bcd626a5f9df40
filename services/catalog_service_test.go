package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

func newTestCatalog() *services.CatalogService {
	return services.NewCatalogService(zap.NewNop())
}

func TestCatalogCounts(t *testing.T) {
	catalog := newTestCatalog()

	assert.Len(t, catalog.Products(), 19)
	assert.Len(t, catalog.Categories(), 6)
	assert.Len(t, catalog.Brands(), 4)
}

func TestSearchProductsByText(t *testing.T) {
	catalog := newTestCatalog()

	byName := catalog.SearchProducts("coffee", models.ProductFilters{})
	assert.NotEmpty(t, byName)
	assert.Equal(t, "bev001", byName[0].ID)

	byBrand := catalog.SearchProducts("organic valley", models.ProductFilters{})
	assert.Len(t, byBrand, 4)

	byTag := catalog.SearchProducts("sugar-free", models.ProductFilters{})
	assert.Len(t, byTag, 1)
	assert.Equal(t, "bev004", byTag[0].ID)

	assert.Empty(t, catalog.SearchProducts("zzzzz", models.ProductFilters{}))
}

func TestSearchProductsFilters(t *testing.T) {
	catalog := newTestCatalog()

	beverages := catalog.SearchProducts("", models.ProductFilters{Category: "beverages"})
	assert.Len(t, beverages, 4)

	coffeeOnly := catalog.SearchProducts("", models.ProductFilters{Category: "beverages", Subcategory: "coffee"})
	assert.Len(t, coffeeOnly, 1)

	minPrice := models.MoneyFromCents(900)
	pricey := catalog.SearchProducts("", models.ProductFilters{MinPrice: &minPrice})
	for _, p := range pricey {
		assert.GreaterOrEqual(t, p.Price.Cents(), int64(900))
	}

	highlyRated := catalog.SearchProducts("", models.ProductFilters{MinRating: 4.7})
	for _, p := range highlyRated {
		assert.GreaterOrEqual(t, p.Rating, 4.7)
	}

	newOnSale := catalog.SearchProducts("", models.ProductFilters{Availability: []string{"new", "on-sale"}})
	for _, p := range newOnSale {
		assert.True(t, p.IsNew)
		assert.True(t, p.IsOnSale)
	}
}

func TestSortProducts(t *testing.T) {
	catalog := newTestCatalog()
	products := catalog.Products()

	byPriceLow := catalog.SortProducts(products, models.SortPriceLow)
	for i := 1; i < len(byPriceLow); i++ {
		assert.LessOrEqual(t, byPriceLow[i-1].Price.Cents(), byPriceLow[i].Price.Cents())
	}

	// Several products tie for the cheapest price, so compare prices at
	// the ends rather than a specific id.
	byPriceHigh := catalog.SortProducts(products, models.SortPriceHigh)
	assert.Equal(t, byPriceLow[0].Price, byPriceHigh[len(byPriceHigh)-1].Price)
	assert.Equal(t, byPriceLow[len(byPriceLow)-1].Price, byPriceHigh[0].Price)

	byRating := catalog.SortProducts(products, models.SortRating)
	assert.Equal(t, "choc001", byRating[0].ID)

	// Unknown sort keys leave the order untouched.
	unchanged := catalog.SortProducts(products, "bogus")
	assert.Equal(t, products, unchanged)
}

func TestGetProductByID(t *testing.T) {
	catalog := newTestCatalog()

	product, ok := catalog.GetProductByID("dairy002")
	assert.True(t, ok)
	assert.Equal(t, "Artisan Sourdough Bread", product.Name)

	_, ok = catalog.GetProductByID("nope")
	assert.False(t, ok)
}

func TestCuratedLists(t *testing.T) {
	catalog := newTestCatalog()

	featured := catalog.FeaturedProducts(8)
	assert.Len(t, featured, 8)
	for _, p := range featured {
		assert.True(t, p.Rating >= 4.3 || p.IsNew)
	}

	popular := catalog.PopularProducts(6)
	assert.Len(t, popular, 6)
	assert.Equal(t, "choc001", popular[0].ID)

	onSale := catalog.OnSaleProducts(10)
	assert.Len(t, onSale, 10)
	for _, p := range onSale {
		assert.True(t, p.IsOnSale)
	}

	fresh := catalog.NewProducts(6)
	for _, p := range fresh {
		assert.True(t, p.IsNew)
	}
}

func TestSimilarProducts(t *testing.T) {
	catalog := newTestCatalog()

	similar := catalog.SimilarProducts("bev001", 4)
	assert.Len(t, similar, 4)
	for _, p := range similar {
		assert.NotEqual(t, "bev001", p.ID)
		assert.True(t, p.Category == "beverages" || p.Brand == "Fresh Choice")
	}

	assert.Empty(t, catalog.SimilarProducts("nope", 4))
}

func TestSearchSuggestions(t *testing.T) {
	catalog := newTestCatalog()

	assert.Nil(t, catalog.SearchSuggestions("c", 5))

	suggestions := catalog.SearchSuggestions("fresh", 5)
	assert.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 5)
	assert.Contains(t, suggestions, "Fresh Choice")
}

func TestDiscountPercent(t *testing.T) {
	catalog := newTestCatalog()

	assert.Equal(t, 19, catalog.DiscountPercent(models.MoneyFromCents(1599), models.MoneyFromCents(1299)))
	assert.Equal(t, 0, catalog.DiscountPercent(0, models.MoneyFromCents(100)))
}

func TestStockStatus(t *testing.T) {
	catalog := newTestCatalog()

	assert.Equal(t, models.StockStatusIn, catalog.StockStatus("bev001"))
	assert.Equal(t, models.StockStatusUnknown, catalog.StockStatus("nope"))
	assert.True(t, catalog.IsProductInStock("bev001"))
	assert.False(t, catalog.IsProductInStock("nope"))
}

func TestProductForCart(t *testing.T) {
	catalog := newTestCatalog()

	input, ok := catalog.ProductForCart("bev001")
	assert.True(t, ok)
	assert.Equal(t, "bev001", input.ID)
	assert.Equal(t, int64(1299), input.Price.Cents())
	assert.Equal(t, int64(1599), input.OriginalPrice.Cents())

	_, ok = catalog.ProductForCart("nope")
	assert.False(t, ok)
}

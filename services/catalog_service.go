package services

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
)

// CatalogService serves the static product catalog with search, filtering
// and sorting. The catalog is fixed at startup and safe for concurrent reads.
type CatalogService struct {
	products   []models.Product
	categories []models.Category
	brands     []models.Brand
	logger     *zap.Logger
}

func NewCatalogService(logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products:   catalogProducts(),
		categories: catalogCategories(),
		brands:     catalogBrands(),
		logger:     logger,
	}
}

func (s *CatalogService) Products() []models.Product {
	return append([]models.Product(nil), s.products...)
}

func (s *CatalogService) Categories() []models.Category {
	return append([]models.Category(nil), s.categories...)
}

func (s *CatalogService) Brands() []models.Brand {
	return append([]models.Brand(nil), s.brands...)
}

// SearchProducts filters the catalog by a free-text query plus structured
// filters. An empty query matches everything.
func (s *CatalogService) SearchProducts(query string, filters models.ProductFilters) []models.Product {
	results := s.Products()

	if term := strings.ToLower(strings.TrimSpace(query)); term != "" {
		results = filterProducts(results, func(p models.Product) bool {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				strings.Contains(strings.ToLower(p.Brand), term) {
				return true
			}
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					return true
				}
			}
			return false
		})
	}

	if filters.Category != "" && filters.Category != "all" {
		results = filterProducts(results, func(p models.Product) bool {
			return p.Category == filters.Category
		})
	}

	if filters.Subcategory != "" {
		results = filterProducts(results, func(p models.Product) bool {
			return p.Subcategory == filters.Subcategory
		})
	}

	if len(filters.Brands) > 0 {
		results = filterProducts(results, func(p models.Product) bool {
			for _, b := range filters.Brands {
				if p.Brand == b {
					return true
				}
			}
			return false
		})
	}

	if filters.MinPrice != nil || filters.MaxPrice != nil {
		results = filterProducts(results, func(p models.Product) bool {
			if filters.MinPrice != nil && p.Price < *filters.MinPrice {
				return false
			}
			if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
				return false
			}
			return true
		})
	}

	if filters.MinRating > 0 {
		results = filterProducts(results, func(p models.Product) bool {
			return p.Rating >= filters.MinRating
		})
	}

	for _, availability := range filters.Availability {
		switch availability {
		case "in-stock":
			results = filterProducts(results, func(p models.Product) bool { return p.Stock > 0 })
		case "on-sale":
			results = filterProducts(results, func(p models.Product) bool { return p.IsOnSale })
		case "new":
			results = filterProducts(results, func(p models.Product) bool { return p.IsNew })
		}
	}

	if len(filters.Tags) > 0 {
		results = filterProducts(results, func(p models.Product) bool {
			for _, want := range filters.Tags {
				for _, tag := range p.Tags {
					if tag == want {
						return true
					}
				}
			}
			return false
		})
	}

	return results
}

// SortProducts returns a sorted copy. Unknown sort keys leave the order as-is.
func (s *CatalogService) SortProducts(products []models.Product, sortBy string) []models.Product {
	sorted := append([]models.Product(nil), products...)

	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case models.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case models.SortName:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	case models.SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].IsNew && !sorted[j].IsNew })
	case models.SortPopularity:
		// Stock stands in for popularity until real order data exists.
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Stock > sorted[j].Stock })
	}

	return sorted
}

func (s *CatalogService) GetProductByID(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *CatalogService) ProductsByCategory(category string) []models.Product {
	if category == "all" {
		return s.Products()
	}
	return filterProducts(s.Products(), func(p models.Product) bool {
		return p.Category == category
	})
}

func (s *CatalogService) ProductsByBrand(brand string) []models.Product {
	return filterProducts(s.Products(), func(p models.Product) bool {
		return p.Brand == brand
	})
}

func (s *CatalogService) FeaturedProducts(limit int) []models.Product {
	featured := filterProducts(s.Products(), func(p models.Product) bool {
		return p.Rating >= 4.3 || p.IsNew
	})
	return capProducts(featured, limit)
}

func (s *CatalogService) PopularProducts(limit int) []models.Product {
	return capProducts(s.SortProducts(s.products, models.SortRating), limit)
}

func (s *CatalogService) OnSaleProducts(limit int) []models.Product {
	onSale := filterProducts(s.Products(), func(p models.Product) bool { return p.IsOnSale })
	return capProducts(onSale, limit)
}

func (s *CatalogService) NewProducts(limit int) []models.Product {
	fresh := filterProducts(s.Products(), func(p models.Product) bool { return p.IsNew })
	return capProducts(fresh, limit)
}

// SimilarProducts finds other products sharing a category or brand with the
// given product.
func (s *CatalogService) SimilarProducts(productID string, limit int) []models.Product {
	product, ok := s.GetProductByID(productID)
	if !ok {
		return nil
	}
	similar := filterProducts(s.Products(), func(p models.Product) bool {
		return p.ID != productID && (p.Category == product.Category || p.Brand == product.Brand)
	})
	return capProducts(similar, limit)
}

// SearchSuggestions collects product names, category names and brand names
// matching the query. Queries shorter than two characters return nothing.
func (s *CatalogService) SearchSuggestions(query string, limit int) []string {
	if len(query) < 2 {
		return nil
	}

	term := strings.ToLower(query)
	var suggestions []string
	seen := make(map[string]bool)

	add := func(value string) {
		if !seen[value] && strings.Contains(strings.ToLower(value), term) {
			seen[value] = true
			suggestions = append(suggestions, value)
		}
	}

	for _, p := range s.products {
		add(p.Name)
	}
	for _, c := range s.categories {
		add(c.Name)
	}
	for _, b := range s.brands {
		add(b.Name)
	}

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// DiscountPercent reports the markdown from original to current price,
// rounded to the nearest whole percent.
func (s *CatalogService) DiscountPercent(original, current models.Money) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round(float64(original-current) / float64(original) * 100))
}

func (s *CatalogService) IsProductInStock(productID string) bool {
	product, ok := s.GetProductByID(productID)
	return ok && product.Stock > 0
}

func (s *CatalogService) StockStatus(productID string) string {
	product, ok := s.GetProductByID(productID)
	if !ok {
		return models.StockStatusUnknown
	}
	switch {
	case product.Stock == 0:
		return models.StockStatusOut
	case product.Stock <= 5:
		return models.StockStatusLow
	default:
		return models.StockStatusIn
	}
}

// ProductForCart shapes a catalog product into the input the cart accepts.
func (s *CatalogService) ProductForCart(productID string) (models.ProductInput, bool) {
	product, ok := s.GetProductByID(productID)
	if !ok {
		return models.ProductInput{}, false
	}
	original := product.OriginalPrice
	return models.ProductInput{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: &original,
		Image:         product.Image,
	}, true
}

func filterProducts(products []models.Product, keep func(models.Product) bool) []models.Product {
	filtered := products[:0]
	for _, p := range products {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func capProducts(products []models.Product, limit int) []models.Product {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}

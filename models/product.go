package models

// Product is one catalog record. The catalog is static, in-memory reference
// data; nothing in the storefront mutates it.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Brand         string   `json:"brand"`
	Price         Money    `json:"price"`
	OriginalPrice Money    `json:"originalPrice"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"`
	Stock         int      `json:"stock"`
	IsNew         bool     `json:"isNew"`
	IsOnSale      bool     `json:"isOnSale"`
	Tags          []string `json:"tags"`
}

// StockStatus buckets for product availability display.
const (
	StockStatusIn      = "in-stock"
	StockStatusLow     = "low-stock"
	StockStatusOut     = "out-of-stock"
	StockStatusUnknown = "unknown"
)

// Category groups products and carries its display metadata.
type Category struct {
	Key           string            `json:"key"`
	Name          string            `json:"name"`
	Icon          string            `json:"icon"`
	Description   string            `json:"description"`
	Subcategories map[string]string `json:"subcategories"`
}

// Brand is a product brand reference record.
type Brand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// ProductFilters narrows a catalog search. Zero values mean "no filter".
type ProductFilters struct {
	Category     string
	Subcategory  string
	Brands       []string
	MinPrice     *Money
	MaxPrice     *Money
	MinRating    float64
	Availability []string // in-stock, on-sale, new
	Tags         []string
}

// Sort orders accepted by the catalog.
const (
	SortRelevance  = "relevance"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortRating     = "rating"
	SortName       = "name"
	SortNewest     = "newest"
	SortPopularity = "popularity"
)

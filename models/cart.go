package models

import "time"

// DefaultProductImage is the generic box icon used when a product carries no
// image of its own.
const DefaultProductImage = "fas fa-box"

// CartLine is one product entry in the cart with its quantity. Lines are
// unique by ID; quantity is always at least 1 (a zero or negative quantity
// removes the line instead of being stored).
type CartLine struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         Money  `json:"price"`
	OriginalPrice Money  `json:"originalPrice"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
}

// Cart is the persisted cart document: the line items plus the applied
// coupon, if any.
type Cart struct {
	Items     []CartLine `json:"items"`
	Coupon    *Coupon    `json:"coupon,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ProductInput is the product-ish payload accepted by the cart's add
// operation. Identity resolves from ID, then SKU, then ProductID, then Name;
// prices accept numbers or free text; a missing image falls back to Icon and
// then to the generic box icon.
type ProductInput struct {
	ID            string `json:"id"`
	SKU           string `json:"sku"`
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	Price         Money  `json:"price"`
	OriginalPrice *Money `json:"originalPrice"`
	Image         string `json:"image"`
	Icon          string `json:"icon"`
}

// CartSummary is the read view handed to the presentation layer.
type CartSummary struct {
	Items      []CartLine `json:"items"`
	Coupon     *Coupon    `json:"coupon,omitempty"`
	ItemCount  int        `json:"itemCount"`
	Total      float64    `json:"total"`
	Discount   float64    `json:"discount"`
	FinalTotal float64    `json:"finalTotal"`
}

// CartValidation is the result of the stubbed stock/price revalidation.
type CartValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// CheckoutSnapshot is what proceed-to-checkout writes for the checkout page
// to pick up.
type CheckoutSnapshot struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
	Timestamp int64      `json:"timestamp"`
}

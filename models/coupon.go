package models

// CouponType represents the kind of discount a coupon provides.
type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"
	CouponTypeShipping   CouponType = "shipping"
)

// Coupon is a named discount rule applied to the cart subtotal. At most one
// coupon is applied at a time; applying another replaces it. Shipping
// coupons contribute nothing to the monetary discount; their effect is
// informational, applied to a shipping line elsewhere.
type Coupon struct {
	Code        string     `json:"code"`
	Type        CouponType `json:"type"`
	Value       float64    `json:"value"`
	Description string     `json:"description"`
}

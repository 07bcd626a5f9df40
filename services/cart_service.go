package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
)

// validCoupons is the fixed coupon table the storefront honors.
var validCoupons = map[string]models.Coupon{
	"WELCOME10": {Code: "WELCOME10", Type: models.CouponTypePercentage, Value: 10, Description: "10% off your order"},
	"SAVE5":     {Code: "SAVE5", Type: models.CouponTypeFixed, Value: 5, Description: "$5 off your order"},
	"FREESHIP":  {Code: "FREESHIP", Type: models.CouponTypeShipping, Value: 0, Description: "Free shipping"},
}

// CartService owns the shopping cart. All mutations persist the whole cart
// as one document before returning, so a crash never loses an acknowledged
// change. Methods are safe for concurrent use.
type CartService struct {
	mu       sync.Mutex
	cart     models.Cart
	repo     *repository.CartRepository
	checkout *repository.CheckoutRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewCartService(ctx context.Context, repo *repository.CartRepository, checkout *repository.CheckoutRepository, notifier Notifier, logger *zap.Logger) *CartService {
	s := &CartService{
		repo:     repo,
		checkout: checkout,
		notifier: notifier,
		logger:   logger,
	}

	cart, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("failed to load cart, starting empty", zap.Error(err))
	} else if cart != nil {
		s.cart = *cart
	}
	return s
}

// normalizeProduct fills in the identity and image fallbacks for an
// incoming product before it becomes a cart line.
func normalizeProduct(p models.ProductInput) models.CartLine {
	id := p.ID
	if id == "" {
		id = p.SKU
	}
	if id == "" {
		id = p.ProductID
	}
	if id == "" {
		id = p.Name
	}
	if id == "" {
		id = fmt.Sprintf("item_%d", time.Now().UnixMilli())
	}

	image := p.Image
	if image == "" {
		image = p.Icon
	}
	if image == "" {
		image = models.DefaultProductImage
	}

	original := p.Price
	if p.OriginalPrice != nil {
		original = *p.OriginalPrice
	}

	return models.CartLine{
		ID:            id,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: original,
		Image:         image,
		Quantity:      1,
	}
}

// AddItem puts a product in the cart, incrementing the quantity when a line
// with the same id already exists.
func (s *CartService) AddItem(ctx context.Context, product models.ProductInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := normalizeProduct(product)

	found := false
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == line.ID {
			s.cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart.Items = append(s.cart.Items, line)
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.notifier.Notify(NotifySuccess, fmt.Sprintf("%s added to cart", line.Name))
	s.notifier.OpenCartPanel()
	return nil
}

// RemoveItem deletes a line by id. Removing an absent id is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ID == id {
			name := s.cart.Items[i].Name
			s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return err
			}
			s.notifier.Notify(NotifyInfo, fmt.Sprintf("%s removed from cart", name))
			return nil
		}
	}
	return nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or below removes
// the line.
func (s *CartService) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ID == id {
			s.cart.Items[i].Quantity = quantity
			return s.persist(ctx)
		}
	}
	return nil
}

// IncreaseQuantity bumps a line by one. Absent ids are ignored.
func (s *CartService) IncreaseQuantity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ID == id {
			s.cart.Items[i].Quantity++
			return s.persist(ctx)
		}
	}
	return nil
}

// DecreaseQuantity lowers a line by one, removing it when it reaches zero.
func (s *CartService) DecreaseQuantity(ctx context.Context, id string) error {
	s.mu.Lock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ID == id {
			if s.cart.Items[i].Quantity <= 1 {
				s.mu.Unlock()
				return s.RemoveItem(ctx, id)
			}
			s.cart.Items[i].Quantity--
			err := s.persist(ctx)
			s.mu.Unlock()
			return err
		}
	}
	s.mu.Unlock()
	return nil
}

// ClearCart empties the items but leaves any applied coupon in place.
func (s *CartService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Items = nil
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.notifier.Notify(NotifyInfo, "Cart cleared")
	return nil
}

// Items returns a copy of the current cart lines.
func (s *CartService) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.cart.Items...)
}

// GetTotal sums price times quantity over all lines, in dollars.
func (s *CartService) GetTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *CartService) totalLocked() float64 {
	var cents int64
	for _, item := range s.cart.Items {
		cents += item.Price.Cents() * int64(item.Quantity)
	}
	return models.MoneyFromCents(cents).Dollars()
}

// GetItemCount sums quantities across all lines.
func (s *CartService) GetItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

func (s *CartService) itemCountLocked() int {
	count := 0
	for _, item := range s.cart.Items {
		count += item.Quantity
	}
	return count
}

// ApplyCoupon validates a code against the coupon table and stores it on the
// cart. The lookup is case-insensitive. Returns false for unknown codes.
func (s *CartService) ApplyCoupon(ctx context.Context, code string) (bool, error) {
	coupon, ok := validCoupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		s.notifier.Notify(NotifyError, "Invalid coupon code")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Coupon = &coupon
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.notifier.Notify(NotifySuccess, fmt.Sprintf("Coupon applied: %s", coupon.Description))
	return true, nil
}

// RemoveCoupon drops the applied coupon, if any.
func (s *CartService) RemoveCoupon(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Coupon == nil {
		return nil
	}
	s.cart.Coupon = nil
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.notifier.Notify(NotifyInfo, "Coupon removed")
	return nil
}

// AppliedCoupon returns the coupon on the cart, or nil.
func (s *CartService) AppliedCoupon() *models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Coupon == nil {
		return nil
	}
	c := *s.cart.Coupon
	return &c
}

// GetDiscount computes the dollar discount the applied coupon grants against
// the current subtotal. Percentage coupons take a fraction of the subtotal,
// fixed coupons are capped at the subtotal, shipping coupons discount nothing
// here.
func (s *CartService) GetDiscount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discountLocked()
}

func (s *CartService) discountLocked() float64 {
	if s.cart.Coupon == nil {
		return 0
	}
	subtotal := s.totalLocked()
	switch s.cart.Coupon.Type {
	case models.CouponTypePercentage:
		return subtotal * s.cart.Coupon.Value / 100
	case models.CouponTypeFixed:
		if s.cart.Coupon.Value > subtotal {
			return subtotal
		}
		return s.cart.Coupon.Value
	default:
		return 0
	}
}

// GetFinalTotal is the subtotal less discount, floored at zero.
func (s *CartService) GetFinalTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalTotalLocked()
}

func (s *CartService) finalTotalLocked() float64 {
	final := s.totalLocked() - s.discountLocked()
	if final < 0 {
		return 0
	}
	return final
}

// Summary gathers the cart contents and derived figures in one snapshot.
func (s *CartService) Summary() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var coupon *models.Coupon
	if s.cart.Coupon != nil {
		c := *s.cart.Coupon
		coupon = &c
	}
	return models.CartSummary{
		Items:      append([]models.CartLine(nil), s.cart.Items...),
		Coupon:     coupon,
		ItemCount:  s.itemCountLocked(),
		Total:      s.totalLocked(),
		Discount:   s.discountLocked(),
		FinalTotal: s.finalTotalLocked(),
	}
}

// ValidateCart runs the stock and price checks against the current cart.
// The check is currently a stub that reports every cart valid after a short
// delay standing in for the backing call.
func (s *CartService) ValidateCart(ctx context.Context) (models.CartValidation, error) {
	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return models.CartValidation{}, ctx.Err()
	}
	return models.CartValidation{Valid: true}, nil
}

// ProceedToCheckout validates the cart, snapshots it for the checkout flow
// and reports the snapshot. An empty cart is rejected.
func (s *CartService) ProceedToCheckout(ctx context.Context) (*models.CheckoutSnapshot, error) {
	s.mu.Lock()
	empty := len(s.cart.Items) == 0
	s.mu.Unlock()

	if empty {
		s.notifier.Notify(NotifyWarning, "Your cart is empty")
		return nil, apperrors.ErrEmptyCart
	}

	validation, err := s.ValidateCart(ctx)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		s.notifier.Notify(NotifyError, "Some items in your cart are no longer available")
		return nil, apperrors.ErrValidation
	}

	s.mu.Lock()
	snapshot := models.CheckoutSnapshot{
		Items:     append([]models.CartLine(nil), s.cart.Items...),
		Total:     s.finalTotalLocked(),
		ItemCount: s.itemCountLocked(),
		Timestamp: time.Now().UnixMilli(),
	}
	s.mu.Unlock()

	if err := s.checkout.Save(ctx, snapshot); err != nil {
		s.logger.Error("failed to save checkout snapshot", zap.Error(err))
		return nil, err
	}
	return &snapshot, nil
}

func (s *CartService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, &s.cart); err != nil {
		s.logger.Error("failed to persist cart", zap.Error(err))
		return err
	}
	return nil
}

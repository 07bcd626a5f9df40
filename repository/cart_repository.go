package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
)

// CartRepository persists the cart document as one JSON value.
type CartRepository struct {
	store     database.Store
	namespace string
}

func NewCartRepository(store database.Store, namespace string) *CartRepository {
	return &CartRepository{store: store, namespace: namespace}
}

func (r *CartRepository) key() string {
	return storageKey(r.namespace, keyCart)
}

// Load returns the stored cart, or nil when none exists.
func (r *CartRepository) Load(ctx context.Context) (*models.Cart, error) {
	data, err := r.store.Get(ctx, r.key())
	if err == database.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save writes the cart document, stamping the update time.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key(), string(data))
}

// Delete removes the cart document entirely.
func (r *CartRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, r.key())
}

// CheckoutRepository holds the snapshot written by proceed-to-checkout for
// the checkout page to pick up.
type CheckoutRepository struct {
	store     database.Store
	namespace string
}

func NewCheckoutRepository(store database.Store, namespace string) *CheckoutRepository {
	return &CheckoutRepository{store: store, namespace: namespace}
}

func (r *CheckoutRepository) Save(ctx context.Context, snapshot models.CheckoutSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storageKey(r.namespace, keyCheckout), string(data))
}

func (r *CheckoutRepository) Load(ctx context.Context) (*models.CheckoutSnapshot, error) {
	data, err := r.store.Get(ctx, storageKey(r.namespace, keyCheckout))
	if err == database.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot models.CheckoutSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

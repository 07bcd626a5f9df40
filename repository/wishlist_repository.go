package repository

import (
	"context"
	"encoding/json"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
)

// WishlistRepository persists the wishlist entry list as one JSON value.
type WishlistRepository struct {
	store     database.Store
	namespace string
}

func NewWishlistRepository(store database.Store, namespace string) *WishlistRepository {
	return &WishlistRepository{store: store, namespace: namespace}
}

func (r *WishlistRepository) key() string {
	return storageKey(r.namespace, keyWishlist)
}

// Load returns the stored entries, empty when none exist.
func (r *WishlistRepository) Load(ctx context.Context) ([]models.WishlistEntry, error) {
	data, err := r.store.Get(ctx, r.key())
	if err == database.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []models.WishlistEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *WishlistRepository) Save(ctx context.Context, entries []models.WishlistEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key(), string(data))
}

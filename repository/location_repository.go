package repository

import (
	"context"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
)

// LocationRepository persists the chosen delivery location. Unlike the other
// keys this one holds a raw string, not JSON.
type LocationRepository struct {
	store     database.Store
	namespace string
}

func NewLocationRepository(store database.Store, namespace string) *LocationRepository {
	return &LocationRepository{store: store, namespace: namespace}
}

func (r *LocationRepository) key() string {
	return storageKey(r.namespace, keyDeliveryLocation)
}

// Load returns the saved location, empty when none was chosen yet.
func (r *LocationRepository) Load(ctx context.Context) (string, error) {
	loc, err := r.store.Get(ctx, r.key())
	if err == database.ErrNotFound {
		return "", nil
	}
	return loc, err
}

func (r *LocationRepository) Save(ctx context.Context, location string) error {
	return r.store.Set(ctx, r.key(), location)
}

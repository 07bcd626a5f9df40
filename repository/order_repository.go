package repository

import (
	"context"
	"encoding/json"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
)

// OrderRepository reads the mock order list. Orders are written by a
// checkout collaborator; this repository never writes them.
type OrderRepository struct {
	store     database.Store
	namespace string
}

func NewOrderRepository(store database.Store, namespace string) *OrderRepository {
	return &OrderRepository{store: store, namespace: namespace}
}

// Load returns all orders, empty when none exist.
func (r *OrderRepository) Load(ctx context.Context) ([]models.Order, error) {
	data, err := r.store.Get(ctx, storageKey(r.namespace, keyOrders))
	if err == database.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(data), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

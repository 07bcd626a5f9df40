package repository

import (
	"context"
	"encoding/json"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
)

// SearchHistoryRepository persists the recent-query list, independent of the
// product and cart data.
type SearchHistoryRepository struct {
	store     database.Store
	namespace string
}

func NewSearchHistoryRepository(store database.Store, namespace string) *SearchHistoryRepository {
	return &SearchHistoryRepository{store: store, namespace: namespace}
}

func (r *SearchHistoryRepository) key() string {
	return storageKey(r.namespace, keySearchHistory)
}

func (r *SearchHistoryRepository) Load(ctx context.Context) ([]string, error) {
	data, err := r.store.Get(ctx, r.key())
	if err == database.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var history []string
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *SearchHistoryRepository) Save(ctx context.Context, history []string) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key(), string(data))
}

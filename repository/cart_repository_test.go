package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
)

func TestCartLoadMissingReturnsNil(t *testing.T) {
	repo := repository.NewCartRepository(database.NewMemoryStore(), "test")

	cart, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCartSaveLoadRoundTrip(t *testing.T) {
	repo := repository.NewCartRepository(database.NewMemoryStore(), "test")
	ctx := context.Background()

	cart := &models.Cart{
		Items: []models.CartLine{
			{ID: "p1", Name: "Coffee", Price: models.MoneyFromCents(1299), Quantity: 2},
		},
		Coupon: &models.Coupon{Code: "SAVE5", Type: models.CouponTypeFixed, Value: 5},
	}
	assert.NoError(t, repo.Save(ctx, cart))
	assert.False(t, cart.UpdatedAt.IsZero())

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, loaded.Items, 1)
	assert.Equal(t, int64(1299), loaded.Items[0].Price.Cents())
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.Equal(t, "SAVE5", loaded.Coupon.Code)
}

func TestCartLoadCorruptDocument(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	assert.NoError(t, store.Set(ctx, "test_cart", "{not json"))

	repo := repository.NewCartRepository(store, "test")
	_, err := repo.Load(ctx)
	assert.Error(t, err)
}

func TestCartDelete(t *testing.T) {
	store := database.NewMemoryStore()
	repo := repository.NewCartRepository(store, "test")
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, &models.Cart{}))
	assert.NoError(t, repo.Delete(ctx))

	cart, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCheckoutSnapshotRoundTrip(t *testing.T) {
	repo := repository.NewCheckoutRepository(database.NewMemoryStore(), "test")
	ctx := context.Background()

	missing, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	snapshot := models.CheckoutSnapshot{
		Items:     []models.CartLine{{ID: "p1", Name: "Coffee", Price: models.MoneyFromCents(1299), Quantity: 1}},
		Total:     12.99,
		ItemCount: 1,
		Timestamp: 1756700000000,
	}
	assert.NoError(t, repo.Save(ctx, snapshot))

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, snapshot.Total, loaded.Total)
	assert.Equal(t, snapshot.Timestamp, loaded.Timestamp)
}

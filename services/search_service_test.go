package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

func newTestSearch(t *testing.T) *services.SearchService {
	t.Helper()
	store := database.NewMemoryStore()
	logger := zap.NewNop()
	catalog := services.NewCatalogService(logger)
	return services.NewSearchService(context.Background(), catalog,
		repository.NewSearchHistoryRepository(store, "test"), logger)
}

func TestSearchRecordsHistory(t *testing.T) {
	svc := newTestSearch(t)
	ctx := context.Background()

	results := svc.Search(ctx, "coffee", models.ProductFilters{})
	assert.NotEmpty(t, results)
	assert.Equal(t, []string{"coffee"}, svc.History())
}

func TestSearchBlankQueryNotRecorded(t *testing.T) {
	svc := newTestSearch(t)

	results := svc.Search(context.Background(), "   ", models.ProductFilters{})
	assert.Nil(t, results)
	assert.Empty(t, svc.History())
}

func TestHistoryDedupeMovesToFront(t *testing.T) {
	svc := newTestSearch(t)
	ctx := context.Background()

	svc.AddToHistory(ctx, "milk")
	svc.AddToHistory(ctx, "bread")
	svc.AddToHistory(ctx, "Milk")

	assert.Equal(t, []string{"Milk", "bread"}, svc.History())
}

func TestHistoryCappedAtTen(t *testing.T) {
	svc := newTestSearch(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		svc.AddToHistory(ctx, fmt.Sprintf("query-%d", i))
	}

	history := svc.History()
	assert.Len(t, history, 10)
	assert.Equal(t, "query-14", history[0])
	assert.Equal(t, "query-5", history[9])
}

func TestRemoveAndClearHistory(t *testing.T) {
	svc := newTestSearch(t)
	ctx := context.Background()

	svc.AddToHistory(ctx, "milk")
	svc.AddToHistory(ctx, "bread")

	svc.RemoveFromHistory(ctx, "MILK")
	assert.Equal(t, []string{"bread"}, svc.History())

	svc.ClearHistory(ctx)
	assert.Empty(t, svc.History())
}

func TestSuggestionsComeFromCatalog(t *testing.T) {
	svc := newTestSearch(t)

	suggestions := svc.Suggestions("choco", 5)
	assert.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions, "Chocolates & Sweets")
}

func TestQueueSuggestionsDeliversLatestQuery(t *testing.T) {
	svc := newTestSearch(t)
	var delivered atomic.Value

	svc.QueueSuggestions("mil", 5, func([]string) {})
	svc.QueueSuggestions("milk", 5, func(s []string) { delivered.Store(s) })

	assert.Eventually(t, func() bool {
		return delivered.Load() != nil
	}, time.Second, 10*time.Millisecond)

	suggestions := delivered.Load().([]string)
	assert.Contains(t, suggestions, "Organic Whole Milk")
}

func TestDebouncerRunsLastOnly(t *testing.T) {
	d := services.NewDebouncer(30 * time.Millisecond)
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() { last.Store(n) })
	}

	assert.Eventually(t, func() bool {
		return last.Load() == 5
	}, time.Second, 10*time.Millisecond)

	// Nothing else fires afterwards.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(5), last.Load())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := services.NewDebouncer(30 * time.Millisecond)
	var fired atomic.Bool

	d.Trigger(func() { fired.Store(true) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.False(t, fired.Load())
}

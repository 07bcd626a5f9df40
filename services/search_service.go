package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
)

const maxSearchHistory = 10

// suggestionDebounce is the quiet period after the last keystroke before a
// live suggestion lookup runs.
const suggestionDebounce = 300 * time.Millisecond

// SearchService runs catalog searches and keeps a short, deduplicated
// history of recent queries.
type SearchService struct {
	mu       sync.Mutex
	history  []string
	catalog  *CatalogService
	repo     *repository.SearchHistoryRepository
	debounce *Debouncer
	logger   *zap.Logger
}

func NewSearchService(ctx context.Context, catalog *CatalogService, repo *repository.SearchHistoryRepository, logger *zap.Logger) *SearchService {
	s := &SearchService{
		catalog:  catalog,
		repo:     repo,
		debounce: NewDebouncer(suggestionDebounce),
		logger:   logger,
	}

	history, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("failed to load search history, starting empty", zap.Error(err))
	} else {
		s.history = history
	}
	return s
}

// Search records the query in history and runs it against the catalog.
// Blank queries search nothing and are not recorded.
func (s *SearchService) Search(ctx context.Context, query string, filters models.ProductFilters) []models.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	s.AddToHistory(ctx, query)
	return s.catalog.SearchProducts(query, filters)
}

// Suggestions proxies catalog search suggestions.
func (s *SearchService) Suggestions(query string, limit int) []string {
	return s.catalog.SearchSuggestions(query, limit)
}

// QueueSuggestions schedules a suggestion lookup after a short quiet period.
// Rapid successive calls coalesce so only the latest query is delivered.
func (s *SearchService) QueueSuggestions(query string, limit int, deliver func([]string)) {
	s.debounce.Trigger(func() {
		deliver(s.Suggestions(query, limit))
	})
}

// History returns recent queries, most recent first.
func (s *SearchService) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}

// AddToHistory puts the query at the front, dropping any earlier occurrence
// and anything beyond the cap.
func (s *SearchService) AddToHistory(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.history {
		if strings.EqualFold(existing, query) {
			s.history = append(s.history[:i], s.history[i+1:]...)
			break
		}
	}

	s.history = append([]string{query}, s.history...)
	if len(s.history) > maxSearchHistory {
		s.history = s.history[:maxSearchHistory]
	}
	s.persist(ctx)
}

// RemoveFromHistory drops one query from the history.
func (s *SearchService) RemoveFromHistory(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.history {
		if strings.EqualFold(existing, query) {
			s.history = append(s.history[:i], s.history[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// ClearHistory wipes all recorded queries.
func (s *SearchService) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.persist(ctx)
}

func (s *SearchService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.history); err != nil {
		s.logger.Error("failed to persist search history", zap.Error(err))
	}
}

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
)

// WishlistService keeps the user's saved-for-later list. Entries are matched
// by id when both sides have one, otherwise by name.
type WishlistService struct {
	mu       sync.Mutex
	items    []models.WishlistEntry
	repo     *repository.WishlistRepository
	cart     *CartService
	notifier Notifier
	logger   *zap.Logger
}

func NewWishlistService(ctx context.Context, repo *repository.WishlistRepository, cart *CartService, notifier Notifier, logger *zap.Logger) *WishlistService {
	s := &WishlistService{
		repo:     repo,
		cart:     cart,
		notifier: notifier,
		logger:   logger,
	}

	items, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("failed to load wishlist, starting empty", zap.Error(err))
	} else {
		s.items = items
	}
	return s
}

// Add saves an entry unless an equivalent one is already present. Reports
// whether the entry was added.
func (s *WishlistService) Add(ctx context.Context, entry models.WishlistEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(entry) >= 0 {
		s.notifier.Notify(NotifyInfo, fmt.Sprintf("%s is already in your wishlist", entry.Name))
		return false, nil
	}

	entry.AddedAt = time.Now()
	s.items = append(s.items, entry)
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.notifier.Notify(NotifySuccess, fmt.Sprintf("%s added to wishlist", entry.Name))
	return true, nil
}

// Remove deletes the matching entry. Removing an absent entry is a no-op.
func (s *WishlistService) Remove(ctx context.Context, entry models.WishlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(entry)
	if i < 0 {
		return nil
	}
	name := s.items[i].Name
	s.items = append(s.items[:i], s.items[i+1:]...)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.notifier.Notify(NotifyInfo, fmt.Sprintf("%s removed from wishlist", name))
	return nil
}

// Toggle adds the entry when absent and removes it when present. Reports
// whether the entry is present afterwards.
func (s *WishlistService) Toggle(ctx context.Context, entry models.WishlistEntry) (bool, error) {
	if s.Contains(entry) {
		return false, s.Remove(ctx, entry)
	}
	_, err := s.Add(ctx, entry)
	return err == nil, err
}

// Contains reports whether an equivalent entry is saved.
func (s *WishlistService) Contains(entry models.WishlistEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOfLocked(entry) >= 0
}

// Items returns a copy of the saved entries.
func (s *WishlistService) Items() []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WishlistEntry(nil), s.items...)
}

// Count reports how many entries are saved.
func (s *WishlistService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// AddAllToCart moves every saved entry into the cart, one unit each. The
// wishlist itself is left intact.
func (s *WishlistService) AddAllToCart(ctx context.Context) error {
	items := s.Items()
	if len(items) == 0 {
		s.notifier.Notify(NotifyInfo, "Your wishlist is empty")
		return nil
	}

	for _, entry := range items {
		price := models.ParseMoney(entry.Price)
		input := models.ProductInput{
			ID:    entry.ID,
			Name:  entry.Name,
			Price: price,
			Image: entry.Image,
		}
		if err := s.cart.AddItem(ctx, input); err != nil {
			return err
		}
	}
	s.notifier.Notify(NotifySuccess, fmt.Sprintf("%d items added to cart", len(items)))
	return nil
}

// Clear wipes the wishlist. The caller must confirm the action first.
func (s *WishlistService) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.notifier.Notify(NotifyInfo, "Wishlist cleared")
	return nil
}

func (s *WishlistService) indexOfLocked(entry models.WishlistEntry) int {
	for i, item := range s.items {
		if item.Matches(entry) {
			return i
		}
	}
	return -1
}

func (s *WishlistService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.logger.Error("failed to persist wishlist", zap.Error(err))
		return err
	}
	return nil
}

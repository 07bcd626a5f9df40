package repository

import (
	"context"
	"encoding/json"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
)

// UserRepository persists the registry of registered accounts and the
// current session. Records are never deleted by any exposed operation.
type UserRepository struct {
	store     database.Store
	namespace string
}

func NewUserRepository(store database.Store, namespace string) *UserRepository {
	return &UserRepository{store: store, namespace: namespace}
}

// LoadUsers returns all registered accounts, empty when none exist.
func (r *UserRepository) LoadUsers(ctx context.Context) ([]models.User, error) {
	data, err := r.store.Get(ctx, storageKey(r.namespace, keyUsers))
	if err == database.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) SaveUsers(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storageKey(r.namespace, keyUsers), string(data))
}

// LoadSession returns the active session, or nil when logged out.
func (r *UserRepository) LoadSession(ctx context.Context) (*models.Session, error) {
	data, err := r.store.Get(ctx, storageKey(r.namespace, keyCurrentUser))
	if err == database.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *UserRepository) SaveSession(ctx context.Context, session *models.Session) error {
	if session == nil {
		return r.store.Delete(ctx, storageKey(r.namespace, keyCurrentUser))
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storageKey(r.namespace, keyCurrentUser), string(data))
}

// AddressRepository persists saved addresses as one map keyed by user id.
type AddressRepository struct {
	store     database.Store
	namespace string
}

func NewAddressRepository(store database.Store, namespace string) *AddressRepository {
	return &AddressRepository{store: store, namespace: namespace}
}

func (r *AddressRepository) loadAll(ctx context.Context) (map[string][]models.Address, error) {
	data, err := r.store.Get(ctx, storageKey(r.namespace, keyAddresses))
	if err == database.ErrNotFound {
		return map[string][]models.Address{}, nil
	}
	if err != nil {
		return nil, err
	}

	byUser := map[string][]models.Address{}
	if err := json.Unmarshal([]byte(data), &byUser); err != nil {
		return nil, err
	}
	return byUser, nil
}

// ForUser returns the address list for one user, empty when none saved.
func (r *AddressRepository) ForUser(ctx context.Context, userID string) ([]models.Address, error) {
	byUser, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return byUser[userID], nil
}

// SaveForUser replaces the address list for one user.
func (r *AddressRepository) SaveForUser(ctx context.Context, userID string, list []models.Address) error {
	byUser, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	byUser[userID] = list

	data, err := json.Marshal(byUser)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storageKey(r.namespace, keyAddresses), string(data))
}

package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var lastUserID atomic.Int64

// nextUserID returns a millisecond-timestamp id, bumped past the previous
// one so registrations landing in the same millisecond stay distinct.
func nextUserID() string {
	now := time.Now().UnixMilli()
	for {
		last := lastUserID.Load()
		if now <= last {
			now = last + 1
		}
		if lastUserID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}

// AuthService manages accounts, the current session, saved addresses and
// order history. Accounts are stored as one document; the session is a
// separate document so logout never touches the account list.
type AuthService struct {
	mu        sync.Mutex
	users     []models.User
	session   *models.Session
	repo      *repository.UserRepository
	addresses *repository.AddressRepository
	orders    *repository.OrderRepository
	notifier  Notifier
	logger    *zap.Logger
}

func NewAuthService(ctx context.Context, repo *repository.UserRepository, addresses *repository.AddressRepository, orders *repository.OrderRepository, notifier Notifier, logger *zap.Logger) *AuthService {
	s := &AuthService{
		repo:      repo,
		addresses: addresses,
		orders:    orders,
		notifier:  notifier,
		logger:    logger,
	}

	users, err := repo.LoadUsers(ctx)
	if err != nil {
		logger.Warn("failed to load accounts, starting empty", zap.Error(err))
	} else {
		s.users = users
	}

	session, err := repo.LoadSession(ctx)
	if err != nil {
		logger.Warn("failed to restore session", zap.Error(err))
	} else {
		s.session = session
	}
	return s
}

// Register validates the form, creates the account and logs it in.
func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	if firstName == "" {
		return nil, apperrors.NewValidation("firstName", "First name is required")
	}
	if lastName == "" {
		return nil, apperrors.NewValidation("lastName", "Last name is required")
	}
	if email == "" {
		return nil, apperrors.NewValidation("email", "Email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidation("email", "Please enter a valid email address")
	}
	if input.Password == "" {
		return nil, apperrors.NewValidation("password", "Password is required")
	}
	if len(input.Password) < 6 {
		return nil, apperrors.NewValidation("password", "Password must be at least 6 characters")
	}
	if input.Password != input.ConfirmPassword {
		return nil, apperrors.NewValidation("confirmPassword", "Passwords do not match")
	}
	if !input.AcceptTerms {
		return nil, apperrors.NewValidation("acceptTerms", "You must accept the terms and conditions")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(email) != nil {
		return nil, apperrors.ErrEmailTaken
	}

	user := models.User{
		ID:         nextUserID(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		Password:   input.Password,
		Newsletter: input.Newsletter,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		IsActive:   true,
	}

	s.users = append(s.users, user)
	if err := s.repo.SaveUsers(ctx, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		s.logger.Error("failed to persist accounts", zap.Error(err))
		return nil, err
	}

	if err := s.setSessionLocked(ctx, &models.Session{User: user}); err != nil {
		return nil, err
	}

	s.notifier.Notify(NotifySuccess, "Account created successfully! Welcome to QuickBasket.")
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Login authenticates by email and password. Unknown emails and wrong
// passwords fail identically so the response never reveals which was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.NewValidation("email", "Email is required")
	}
	if password == "" {
		return nil, apperrors.NewValidation("password", "Password is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findByEmailLocked(email)
	if user == nil || user.Password != password {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.setSessionLocked(ctx, &models.Session{User: *user, RememberMe: rememberMe}); err != nil {
		return nil, err
	}

	s.notifier.Notify(NotifySuccess, "Login successful! Welcome back.")
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Logout clears the session. Logging out while logged out is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	if err := s.setSessionLocked(ctx, nil); err != nil {
		return err
	}
	s.notifier.Notify(NotifyInfo, "You have been logged out")
	return nil
}

// CurrentUser returns the logged-in user without the password, or nil.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	u := s.session.User.Sanitized()
	return &u
}

// IsLoggedIn reports whether a session exists.
func (s *AuthService) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// UpdateProfile edits the logged-in user's name, email and phone. The new
// email must not collide with another account.
func (s *AuthService) UpdateProfile(ctx context.Context, input models.ProfileInput) (*models.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	if firstName == "" || lastName == "" {
		return nil, apperrors.NewValidation("firstName", "First and last name are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidation("email", "Please enter a valid email address")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, apperrors.ErrNotLoggedIn
	}

	if other := s.findByEmailLocked(email); other != nil && other.ID != s.session.ID {
		return nil, apperrors.ErrEmailTaken
	}

	for i := range s.users {
		if s.users[i].ID == s.session.ID {
			s.users[i].FirstName = firstName
			s.users[i].LastName = lastName
			s.users[i].Email = email
			s.users[i].Phone = phone

			if err := s.repo.SaveUsers(ctx, s.users); err != nil {
				s.logger.Error("failed to persist accounts", zap.Error(err))
				return nil, err
			}

			session := *s.session
			session.User = s.users[i]
			if err := s.setSessionLocked(ctx, &session); err != nil {
				return nil, err
			}

			s.notifier.Notify(NotifySuccess, "Profile updated successfully")
			u := s.users[i].Sanitized()
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Addresses lists the logged-in user's saved addresses, newest first.
func (s *AuthService) Addresses(ctx context.Context) ([]models.Address, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	return s.addresses.ForUser(ctx, userID)
}

// AddAddress saves a new address at the front of the list. A blank label
// falls back to "Address".
func (s *AuthService) AddAddress(ctx context.Context, label, line string) (*models.Address, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, apperrors.NewValidation("line", "Please enter an address")
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = "Address"
	}

	list, err := s.addresses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	address := models.Address{ID: uuid.NewString(), Label: label, Line: line}
	list = append([]models.Address{address}, list...)
	if err := s.addresses.SaveForUser(ctx, userID, list); err != nil {
		return nil, err
	}

	s.notifier.Notify(NotifySuccess, "Address saved")
	return &address, nil
}

// RemoveAddress deletes a saved address by id.
func (s *AuthService) RemoveAddress(ctx context.Context, addressID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}

	list, err := s.addresses.ForUser(ctx, userID)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == addressID {
			list = append(list[:i], list[i+1:]...)
			if err := s.addresses.SaveForUser(ctx, userID, list); err != nil {
				return err
			}
			s.notifier.Notify(NotifyInfo, "Address removed")
			return nil
		}
	}
	return nil
}

// Orders returns the logged-in user's order history.
func (s *AuthService) Orders(ctx context.Context) ([]models.Order, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}
	return s.orders.Load(ctx)
}

func (s *AuthService) requireUser() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return "", apperrors.ErrNotLoggedIn
	}
	return s.session.ID, nil
}

func (s *AuthService) findByEmailLocked(email string) *models.User {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return &s.users[i]
		}
	}
	return nil
}

func (s *AuthService) setSessionLocked(ctx context.Context, session *models.Session) error {
	if err := s.repo.SaveSession(ctx, session); err != nil {
		s.logger.Error("failed to persist session", zap.Error(err))
		return err
	}
	s.session = session
	return nil
}

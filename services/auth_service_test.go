package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

func newTestAuth(t *testing.T) (*services.AuthService, database.Store) {
	t.Helper()
	store := database.NewMemoryStore()
	return newTestAuthWithStore(t, store), store
}

func newTestAuthWithStore(t *testing.T, store database.Store) *services.AuthService {
	t.Helper()
	return services.NewAuthService(context.Background(),
		repository.NewUserRepository(store, "test"),
		repository.NewAddressRepository(store, "test"),
		repository.NewOrderRepository(store, "test"),
		&mockNotifier{}, zap.NewNop())
}

func registration(email string) models.RegisterInput {
	return models.RegisterInput{
		FirstName:       "Jamie",
		LastName:        "Rivera",
		Email:           email,
		Phone:           "555-0101",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AcceptTerms:     true,
	}
}

func TestRegisterAutoLogsIn(t *testing.T) {
	auth, _ := newTestAuth(t)

	user, err := auth.Register(context.Background(), registration("jamie@example.com"))
	assert.NoError(t, err)
	assert.Equal(t, "jamie@example.com", user.Email)
	assert.Empty(t, user.Password)
	assert.True(t, auth.IsLoggedIn())
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.RegisterInput)
		field  string
	}{
		{"missing first name", func(r *models.RegisterInput) { r.FirstName = " " }, "firstName"},
		{"missing last name", func(r *models.RegisterInput) { r.LastName = "" }, "lastName"},
		{"missing email", func(r *models.RegisterInput) { r.Email = "" }, "email"},
		{"bad email", func(r *models.RegisterInput) { r.Email = "not-an-email" }, "email"},
		{"missing password", func(r *models.RegisterInput) { r.Password = "" }, "password"},
		{"short password", func(r *models.RegisterInput) { r.Password = "abc"; r.ConfirmPassword = "abc" }, "password"},
		{"mismatched passwords", func(r *models.RegisterInput) { r.ConfirmPassword = "different1" }, "confirmPassword"},
		{"terms not accepted", func(r *models.RegisterInput) { r.AcceptTerms = false }, "acceptTerms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := registration("valid@example.com")
			tt.mutate(&input)

			_, err := auth.Register(ctx, input)
			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestRegisterAssignsDistinctIDs(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	// Back-to-back registrations land in the same millisecond; ids must
	// still differ or the profile-edit collision guard matches the wrong
	// account.
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		user, err := auth.Register(ctx, registration(fmt.Sprintf("user%d@example.com", i)))
		assert.NoError(t, err)
		assert.False(t, seen[user.ID], "duplicate user id %s", user.ID)
		seen[user.ID] = true
		assert.NoError(t, auth.Logout(ctx))
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registration("jamie@example.com"))
	assert.NoError(t, err)

	_, err = auth.Register(ctx, registration("JAMIE@Example.COM"))
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registration("jamie@example.com"))
	assert.NoError(t, err)
	assert.NoError(t, auth.Logout(ctx))

	_, wrongPassword := auth.Login(ctx, "jamie@example.com", "wrongpass", false)
	_, unknownEmail := auth.Login(ctx, "nobody@example.com", "secret123", false)

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginNormalizesEmail(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registration("jamie@example.com"))
	assert.NoError(t, err)
	assert.NoError(t, auth.Logout(ctx))

	user, err := auth.Login(ctx, "  JAMIE@example.com ", "secret123", true)
	assert.NoError(t, err)
	assert.Equal(t, "jamie@example.com", user.Email)
}

func TestLogoutWhileLoggedOutIsNoOp(t *testing.T) {
	auth, _ := newTestAuth(t)
	assert.NoError(t, auth.Logout(context.Background()))
	assert.False(t, auth.IsLoggedIn())
}

func TestSessionSurvivesRestart(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	auth := newTestAuthWithStore(t, store)
	_, err := auth.Register(ctx, registration("jamie@example.com"))
	assert.NoError(t, err)

	reloaded := newTestAuthWithStore(t, store)
	assert.True(t, reloaded.IsLoggedIn())
	assert.Equal(t, "jamie@example.com", reloaded.CurrentUser().Email)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registration("first@example.com"))
	assert.NoError(t, err)
	_, err = auth.Register(ctx, registration("second@example.com"))
	assert.NoError(t, err)

	// second@example.com is now logged in; taking first's email must fail.
	_, err = auth.UpdateProfile(ctx, models.ProfileInput{
		FirstName: "Jamie", LastName: "Rivera", Email: "first@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	// Keeping your own email is fine.
	user, err := auth.UpdateProfile(ctx, models.ProfileInput{
		FirstName: "Jamie", LastName: "Updated", Email: "second@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Updated", user.LastName)
}

func TestAddressesRequireLogin(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Addresses(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotLoggedIn)

	_, err = auth.AddAddress(ctx, "Home", "1 Main St")
	assert.ErrorIs(t, err, apperrors.ErrNotLoggedIn)
}

func TestAddressCRUD(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registration("jamie@example.com"))
	assert.NoError(t, err)

	first, err := auth.AddAddress(ctx, "", "1 Main St")
	assert.NoError(t, err)
	assert.Equal(t, "Address", first.Label)

	second, err := auth.AddAddress(ctx, "Work", "2 Broadway")
	assert.NoError(t, err)

	list, err := auth.Addresses(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	// Newest first.
	assert.Equal(t, second.ID, list[0].ID)

	assert.NoError(t, auth.RemoveAddress(ctx, first.ID))
	list, err = auth.Addresses(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

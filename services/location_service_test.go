package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

// --- Mock Geocoder ---

type mockGeocoder struct {
	address models.GeoAddress
	err     error
}

func (m *mockGeocoder) Reverse(_ context.Context, _, _ float64) (models.GeoAddress, error) {
	return m.address, m.err
}

// --- Helpers ---

func newTestLocation(t *testing.T, geocoder services.Geocoder) (*services.LocationService, database.Store) {
	t.Helper()
	store := database.NewMemoryStore()
	svc := services.NewLocationService(context.Background(),
		repository.NewLocationRepository(store, "test"),
		geocoder, &mockNotifier{}, zap.NewNop())
	return svc, store
}

func TestDefaultLocation(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})
	assert.Equal(t, "New York 10001", svc.Current())
}

func TestLocationSearch(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})

	assert.Nil(t, svc.Search("b"))

	byName := svc.Search("brook")
	assert.Len(t, byName, 2)

	byZip := svc.Search("10001")
	assert.Len(t, byZip, 2) // New York and Manhattan share the zip

	byLabel := svc.Search("chicago 60601")
	assert.Len(t, byLabel, 1)
}

func TestConfirmStagedLocation(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})
	ctx := context.Background()

	svc.Select("Brooklyn 11201", true)
	location, err := svc.Confirm(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, "Brooklyn 11201", location)
	assert.Equal(t, "Brooklyn 11201", svc.Current())
	assert.Nil(t, svc.Selected())
}

func TestConfirmUnavailableRejectedAndNotSaved(t *testing.T) {
	svc, store := newTestLocation(t, &mockGeocoder{})
	ctx := context.Background()

	svc.Select("Staten Island 10301", false)
	_, err := svc.Confirm(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrDeliveryUnavailable)
	assert.Equal(t, "New York 10001", svc.Current())

	_, err = store.Get(ctx, "test_delivery_location")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestConfirmManualInputResolution(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})
	ctx := context.Background()

	// Zip alone resolves to the full label.
	location, err := svc.Confirm(ctx, "60601")
	assert.NoError(t, err)
	assert.Equal(t, "Chicago 60601", location)

	// Name alone, case-insensitive.
	location, err = svc.Confirm(ctx, "miami")
	assert.NoError(t, err)
	assert.Equal(t, "Miami 33101", location)

	// Unmatched input defaults to unavailable.
	_, err = svc.Confirm(ctx, "Atlantis 00000")
	assert.ErrorIs(t, err, apperrors.ErrDeliveryUnavailable)
}

func TestConfirmBlankInputRejected(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})

	_, err := svc.Confirm(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrNoLocationSelected)
}

func TestIsDeliveryAvailable(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})

	assert.True(t, svc.IsDeliveryAvailable("Brooklyn 11201"))
	assert.True(t, svc.IsDeliveryAvailable("90210"))
	assert.False(t, svc.IsDeliveryAvailable("Philadelphia"))
	assert.False(t, svc.IsDeliveryAvailable("Atlantis"))
}

func TestLocateMatchesByZipFirst(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{
		address: models.GeoAddress{City: "Somewhere", Zip: "11215"},
	})

	selected, err := svc.LocateAndSelect(context.Background(), 40.66, -73.98)
	assert.NoError(t, err)
	assert.Equal(t, "Brooklyn 11215", selected.Location)
	assert.True(t, selected.Available)
}

func TestLocateFallsBackToCityName(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{
		address: models.GeoAddress{City: "Chicago", Zip: "99999"},
	})

	selected, err := svc.LocateAndSelect(context.Background(), 41.88, -87.63)
	assert.NoError(t, err)
	assert.Equal(t, "Chicago 60601", selected.Location)
	assert.True(t, selected.Available)
}

func TestLocateUnknownAreaStagedUnavailable(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{
		address: models.GeoAddress{City: "Portland", Zip: "97201"},
	})

	selected, err := svc.LocateAndSelect(context.Background(), 45.5, -122.6)
	assert.NoError(t, err)
	assert.Equal(t, "Portland 97201", selected.Location)
	assert.False(t, selected.Available)
}

func TestLocateUnreadableResultFallsBackToFirstAvailable(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})

	selected, err := svc.LocateAndSelect(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "New York 10001", selected.Location)
	assert.True(t, selected.Available)
}

func TestLocateGeocodeFailure(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{err: errors.New("upstream down")})

	selected, err := svc.LocateAndSelect(context.Background(), 40.7, -74.0)
	assert.Error(t, err)
	assert.Nil(t, selected)
}

func TestGeolocationFailureMessages(t *testing.T) {
	svc, _ := newTestLocation(t, &mockGeocoder{})

	denied := svc.ReportGeolocationFailure(services.GeoFailurePermissionDenied)
	assert.Contains(t, denied, "permission denied")

	timeout := svc.ReportGeolocationFailure(services.GeoFailureTimeout)
	assert.Contains(t, timeout, "timed out")

	generic := svc.ReportGeolocationFailure("something-else")
	assert.Contains(t, generic, "enter it manually")
}

func TestSavedLocationRestoredOnStart(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	repo := repository.NewLocationRepository(store, "test")

	svc := services.NewLocationService(ctx, repo, &mockGeocoder{}, &mockNotifier{}, zap.NewNop())
	svc.Select("Boston 02101", true)
	_, err := svc.Confirm(ctx, "")
	assert.NoError(t, err)

	reloaded := services.NewLocationService(ctx, repo, &mockGeocoder{}, &mockNotifier{}, zap.NewNop())
	assert.Equal(t, "Boston 02101", reloaded.Current())
}

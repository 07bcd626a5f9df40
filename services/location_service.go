package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
)

const defaultLocation = "New York 10001"

// deliveryAreas is the fixed service-area list. The same name may appear
// under multiple zips.
func deliveryAreas() []models.DeliveryArea {
	return []models.DeliveryArea{
		{Name: "New York", Zip: "10001", Available: true},
		{Name: "New York", Zip: "10002", Available: true},
		{Name: "New York", Zip: "10003", Available: true},
		{Name: "Brooklyn", Zip: "11201", Available: true},
		{Name: "Brooklyn", Zip: "11215", Available: true},
		{Name: "Queens", Zip: "11101", Available: true},
		{Name: "Queens", Zip: "11102", Available: true},
		{Name: "Manhattan", Zip: "10001", Available: true},
		{Name: "Manhattan", Zip: "10010", Available: true},
		{Name: "Manhattan", Zip: "10011", Available: true},
		{Name: "Bronx", Zip: "10451", Available: true},
		{Name: "Staten Island", Zip: "10301", Available: false},
		{Name: "Los Angeles", Zip: "90210", Available: true},
		{Name: "Los Angeles", Zip: "90211", Available: true},
		{Name: "Chicago", Zip: "60601", Available: true},
		{Name: "Miami", Zip: "33101", Available: true},
		{Name: "Boston", Zip: "02101", Available: true},
		{Name: "San Francisco", Zip: "94102", Available: true},
		{Name: "Washington DC", Zip: "20001", Available: true},
		{Name: "Philadelphia", Zip: "19101", Available: false},
	}
}

// LocationService picks and persists the delivery location. A location only
// becomes current once confirmed; selection alone changes nothing durable.
type LocationService struct {
	mu       sync.Mutex
	areas    []models.DeliveryArea
	current  string
	selected *models.SelectedLocation
	repo     *repository.LocationRepository
	geocoder Geocoder
	notifier Notifier
	logger   *zap.Logger
}

func NewLocationService(ctx context.Context, repo *repository.LocationRepository, geocoder Geocoder, notifier Notifier, logger *zap.Logger) *LocationService {
	s := &LocationService{
		areas:    deliveryAreas(),
		current:  defaultLocation,
		repo:     repo,
		geocoder: geocoder,
		notifier: notifier,
		logger:   logger,
	}

	saved, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("failed to load delivery location", zap.Error(err))
	} else if saved != "" {
		s.current = saved
	}
	return s
}

// Areas returns the full service-area list.
func (s *LocationService) Areas() []models.DeliveryArea {
	return append([]models.DeliveryArea(nil), s.areas...)
}

// Current returns the confirmed delivery location label.
func (s *LocationService) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Search matches areas by name, zip, or the combined "name zip" label.
// Queries under two characters return nothing.
func (s *LocationService) Search(query string) []models.DeliveryArea {
	if len(query) < 2 {
		return nil
	}

	lower := strings.ToLower(query)
	var matches []models.DeliveryArea
	for _, area := range s.areas {
		if strings.Contains(strings.ToLower(area.Name), lower) ||
			strings.Contains(area.Zip, query) ||
			strings.Contains(strings.ToLower(area.Label()), lower) {
			matches = append(matches, area)
		}
	}
	return matches
}

// Select stages a location for confirmation.
func (s *LocationService) Select(location string, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &models.SelectedLocation{Location: location, Available: available}
}

// Selected returns the staged location, or nil.
func (s *LocationService) Selected() *models.SelectedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	sel := *s.selected
	return &sel
}

// Confirm commits the staged location, or resolves manual input against the
// area list when nothing is staged. Input matching no known area is treated
// as unavailable. Unavailable locations are rejected and never persisted.
func (s *LocationService) Confirm(ctx context.Context, manualInput string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.selected
	if selected == nil {
		input := strings.TrimSpace(manualInput)
		if input == "" {
			return "", apperrors.ErrNoLocationSelected
		}
		selected = s.resolveManual(input)
	}

	if !selected.Available {
		s.notifier.Notify(NotifyError, "Sorry, delivery is not available to this location")
		return "", apperrors.ErrDeliveryUnavailable
	}

	if err := s.repo.Save(ctx, selected.Location); err != nil {
		s.logger.Error("failed to persist delivery location", zap.Error(err))
		return "", err
	}

	s.current = selected.Location
	s.selected = nil
	s.notifier.Notify(NotifySuccess, "Delivery location updated successfully!")
	return s.current, nil
}

func (s *LocationService) resolveManual(input string) *models.SelectedLocation {
	lower := strings.ToLower(input)
	for _, area := range s.areas {
		if strings.ToLower(area.Label()) == lower ||
			area.Zip == input ||
			strings.ToLower(area.Name) == lower {
			return &models.SelectedLocation{Location: area.Label(), Available: area.Available}
		}
	}
	return &models.SelectedLocation{Location: input, Available: false}
}

// IsDeliveryAvailable reports whether a location label or zip maps to a
// serviceable area.
func (s *LocationService) IsDeliveryAvailable(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	for _, area := range s.areas {
		if strings.ToLower(area.Label()) == lower ||
			area.Zip == location ||
			strings.ToLower(area.Name) == lower {
			return area.Available
		}
	}
	return false
}

// Geolocation failure kinds reported by the presentation layer.
const (
	GeoFailurePermissionDenied = "permission-denied"
	GeoFailureUnavailable      = "position-unavailable"
	GeoFailureTimeout          = "timeout"
)

// ReportGeolocationFailure surfaces a device geolocation failure as the
// matching user-facing warning.
func (s *LocationService) ReportGeolocationFailure(kind string) string {
	var message string
	switch kind {
	case GeoFailurePermissionDenied:
		message = "Location permission denied. You can type your city or ZIP instead."
	case GeoFailureUnavailable:
		message = "Location unavailable. Try again or enter your address manually."
	case GeoFailureTimeout:
		message = "Location request timed out. Please try again."
	default:
		message = "Could not get your location. Please enter it manually."
	}
	s.notifier.Notify(NotifyWarning, message)
	return message
}

// LocateAndSelect reverse geocodes coordinates and stages the nearest
// serviceable area. Known zips win over city names; an unmatched readable
// address is staged as unavailable; an unreadable result falls back to the
// first available area.
func (s *LocationService) LocateAndSelect(ctx context.Context, lat, lon float64) (*models.SelectedLocation, error) {
	address, err := s.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("reverse geocode failed", zap.Error(err))
		s.notifier.Notify(NotifyWarning, "Could not resolve your location. Please type your city or ZIP.")
		return nil, err
	}

	if address.Zip == "" && address.City == "" {
		for _, area := range s.areas {
			if area.Available {
				s.Select(area.Label(), true)
				return s.Selected(), nil
			}
		}
		return nil, apperrors.ErrNoLocationSelected
	}

	city := address.City
	if city == "" {
		city = address.State
	}
	if city == "" {
		city = "Current Location"
	}

	var match *models.DeliveryArea
	if address.Zip != "" {
		for i, area := range s.areas {
			if area.Zip == address.Zip && area.Available {
				match = &s.areas[i]
				break
			}
		}
	}
	if match == nil {
		lower := strings.ToLower(city)
		for i, area := range s.areas {
			if strings.ToLower(area.Name) == lower && area.Available {
				match = &s.areas[i]
				break
			}
		}
	}

	if match != nil {
		s.Select(match.Label(), true)
	} else {
		composed := city
		if address.Zip != "" {
			composed = fmt.Sprintf("%s %s", city, address.Zip)
		}
		s.Select(composed, false)
	}
	return s.Selected(), nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/models"
)

// Geocoder resolves coordinates to a human-readable address.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (models.GeoAddress, error)
}

// NominatimGeocoder reverse geocodes against the OpenStreetMap Nominatim
// endpoint. No API key is required; requests stay lightweight.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewNominatimGeocoder(baseURL string, logger *zap.Logger) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 8 * time.Second},
		logger:  logger,
	}
}

func (g *NominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (models.GeoAddress, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		g.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lon)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.GeoAddress{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return models.GeoAddress{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.GeoAddress{}, fmt.Errorf("reverse geocode failed with status %d", resp.StatusCode)
	}

	var payload struct {
		Address struct {
			City     string `json:"city"`
			Town     string `json:"town"`
			Village  string `json:"village"`
			County   string `json:"county"`
			State    string `json:"state"`
			Postcode string `json:"postcode"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.GeoAddress{}, err
	}

	city := payload.Address.City
	if city == "" {
		city = payload.Address.Town
	}
	if city == "" {
		city = payload.Address.Village
	}
	if city == "" {
		city = payload.Address.County
	}

	return models.GeoAddress{
		City:  city,
		State: payload.Address.State,
		Zip:   payload.Address.Postcode,
	}, nil
}

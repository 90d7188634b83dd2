package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/AnshRaj112/tripboard-backend/internal/models"
)

const (
	// DefaultGeocoderURL is the public Nominatim instance.
	DefaultGeocoderURL = "https://nominatim.openstreetmap.org"
	// DefaultGeocoderUserAgent identifies the dashboard to Nominatim.
	DefaultGeocoderUserAgent = "travel_itinerary"

	// Nominatim usage policy: at most one request per second.
	geocodeInterval = time.Second
)

// Default map viewport over South Korea.
var (
	MapCenter = [2]float64{36.5, 127.5}
	MapZoom   = 7
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resolves place names through the Nominatim search API.
type Geocoder struct {
	client  *resty.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewGeocoder(baseURL, userAgent string, log *zap.Logger) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultGeocoderURL
	}
	if userAgent == "" {
		userAgent = DefaultGeocoderUserAgent
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &Geocoder{
		client:  c,
		limiter: rate.NewLimiter(rate.Every(geocodeInterval), 1),
		log:     log,
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the coordinates of the best match for place. ok is false
// when Nominatim knows no such place.
func (g *Geocoder) Geocode(ctx context.Context, place string) (Coordinates, bool, error) {
	if strings.TrimSpace(place) == "" {
		return Coordinates{}, false, nil
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return Coordinates{}, false, err
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "json",
			"limit":  "1",
			"q":      place,
		}).
		Get("/search")
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("nominatim request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return Coordinates{}, false, fmt.Errorf("nominatim status %d: %s", resp.StatusCode(), resp.String())
	}

	var places []nominatimPlace
	if err := json.Unmarshal(resp.Body(), &places); err != nil {
		return Coordinates{}, false, fmt.Errorf("decode response: %w", err)
	}
	if len(places) == 0 {
		return Coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("parse longitude: %w", err)
	}
	return Coordinates{Lat: lat, Lng: lng}, true, nil
}

// Marker is one itinerary location on the map.
type Marker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
	Link  string  `json:"link"`
}

// MapsLink is the Google Maps search link shown in a marker popup.
func MapsLink(location string) string {
	return "https://www.google.com/maps/search/" + strings.ReplaceAll(location, " ", "+")
}

// PlaceResolver is the part of Geocoder BuildMarkers needs.
type PlaceResolver interface {
	Geocode(ctx context.Context, place string) (Coordinates, bool, error)
}

// BuildMarkers geocodes each entry location in order. Places that cannot be
// resolved are skipped; failures are returned as messages and not retried.
func BuildMarkers(ctx context.Context, g PlaceResolver, entries []models.ItineraryEntry, log *zap.Logger) ([]Marker, []string) {
	if log == nil {
		log = zap.NewNop()
	}
	markers := make([]Marker, 0, len(entries))
	var problems []string
	for _, e := range entries {
		coords, ok, err := g.Geocode(ctx, e.Location)
		if err != nil {
			log.Warn("geocoding failed", zap.String("location", e.Location), zap.Error(err))
			problems = append(problems, fmt.Sprintf("Error getting coordinates for %s: %v", e.Location, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			Lat:   coords.Lat,
			Lng:   coords.Lng,
			Label: e.Location,
			Link:  MapsLink(e.Location),
		})
	}
	return markers, problems
}

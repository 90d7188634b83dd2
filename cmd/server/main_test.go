package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/AnshRaj112/tripboard-backend/internal/config"
	"github.com/AnshRaj112/tripboard-backend/internal/middleware"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

func newApp(t *testing.T, env string) App {
	t.Helper()
	loc, err := time.LoadLocation("CET")
	require.NoError(t, err)

	cfg := &config.Config{
		Environment:    env,
		AllowedOrigins: []string{"http://localhost:3000"},
		Location:       loc,
		HeroImage:      "southKoreaHero",
		AllowedHost:    "trip.example.com",
		StaticDir:      t.TempDir(),
	}
	log := zaptest.NewLogger(t)
	return App{
		Config:   cfg,
		Store:    store.NewMemory(),
		Sessions: services.NewSessionManager(services.NewMemorySessionStore(), time.Hour, services.SampleItinerary(), log),
		Geocoder: services.NewGeocoder("http://127.0.0.1:0", "", log),
		Log:      log,
	}
}

func TestRouterHealthHasNoSession(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	srv := httptest.NewServer(newApp(t, "development").Router(stop))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
	assert.Empty(t, resp.Cookies())
}

func TestRouterServesSections(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	srv := httptest.NewServer(newApp(t, "development").Router(stop))
	defer srv.Close()

	for _, path := range []string{"/api/sections", "/api/home", "/api/itinerary", "/api/flights", "/api/hotels", "/api/notes", "/api/foods", "/api/packing"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == middleware.SessionCookie {
				cookie = c
			}
		}
		require.NotNil(t, cookie, path)
	}
}

func TestRouterProductionChecksHost(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	h := newApp(t, "production").Router(stop)

	req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
	req.Host = "other.example.com"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"section":"Visa","subsection":"K-ETA"}`))
	req.Host = "trip.example.com"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			assert.True(t, c.Secure)
		}
	}
}

func TestRouterServesHeroFallback(t *testing.T) {
	app := newApp(t, "development")
	require.NoError(t, os.WriteFile(filepath.Join(app.Config.StaticDir, "southKoreaHero.jpg"), []byte("jpeg"), 0o600))

	stop := make(chan struct{})
	defer close(stop)
	srv := httptest.NewServer(app.Router(stop))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/home")
	require.NoError(t, err)
	var home struct {
		View struct {
			Hero struct {
				URL string `json:"url"`
			} `json:"hero"`
		} `json:"view"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&home))
	resp.Body.Close()
	require.Equal(t, "/static/southKoreaHero.jpg", home.View.Hero.URL)

	resp, err = http.Get(srv.URL + home.View.Hero.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jpeg", string(body))
}

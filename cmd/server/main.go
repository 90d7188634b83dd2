package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/config"
	"github.com/AnshRaj112/tripboard-backend/internal/database"
	"github.com/AnshRaj112/tripboard-backend/internal/handlers"
	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/middleware"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/routes"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
	"github.com/AnshRaj112/tripboard-backend/internal/views"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = 10 * time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lg := logger.New(cfg.Environment)
	defer lg.Sync()

	st, err := store.Open(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close(context.Background())

	sessionStore, closeSessions, err := openSessionStore(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeSessions()

	seed, err := services.LoadSeed(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}
	sessions := services.NewSessionManager(sessionStore, cfg.SessionTTL, seed, lg)

	var images views.ImageSource
	if cfg.CloudinaryEnabled() {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			lg.Warn("failed to initialize Cloudinary, serving hero image locally", zap.Error(err))
		} else {
			images = cld
			lg.Info("Cloudinary service initialized")
		}
	} else {
		lg.Info("Cloudinary credentials not found, serving hero image locally")
	}

	app := App{
		Config:   cfg,
		Store:    st,
		Sessions: sessions,
		Geocoder: services.NewGeocoder(cfg.GeocoderURL, cfg.GeocoderUserAgent, lg),
		Images:   images,
		Log:      lg,
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router(ctx.Done()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("tripboard backend running",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreDriver),
			zap.String("sessions", cfg.SessionBackend),
			zap.String("timezone", cfg.Location.String()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openSessionStore(ctx context.Context, cfg *config.Config, lg *zap.Logger) (services.SessionStore, func(), error) {
	if cfg.SessionBackend == config.SessionRedis {
		client, err := database.ConnectRedis(ctx, cfg.RedisURI, lg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return services.NewRedisSessionStore(client), func() { client.Close() }, nil
	}
	mem := services.NewMemorySessionStore()
	mem.StartSweeper(ctx, sweepInterval)
	return mem, func() {}, nil
}

// App holds the wired dependencies of the HTTP server.
type App struct {
	Config   *config.Config
	Store    store.Store
	Sessions *services.SessionManager
	Geocoder services.PlaceResolver
	Images   views.ImageSource
	Log      *zap.Logger
}

// Router builds the HTTP handler. Background limiter cleanup stops when stop
// is closed.
func (a App) Router(stop <-chan struct{}) http.Handler {
	cfg := a.Config
	clock := models.NewTripClock(cfg.Location)

	packing := views.NewPacking(a.Store, a.Log)
	h := routes.Handlers{
		Home:      handlers.NewHomeHandler(views.NewHome(a.Images, cfg.HeroImage, a.Log)),
		Session:   handlers.NewSessionHandler(a.Sessions, cfg.PassphraseHash, a.Log),
		Itinerary: handlers.NewItineraryHandler(views.NewItinerary(a.Sessions, a.Store, a.Geocoder, a.Log), a.Log),
		Flights:   handlers.NewSectionHandler(views.NewSection(views.FlightSchema(clock), a.Store, a.Log), a.Log),
		Hotels:    handlers.NewSectionHandler(views.NewSection(views.HotelSchema(clock), a.Store, a.Log), a.Log),
		Notes:     handlers.NewSectionHandler(views.NewSection(views.NoteSchema(), a.Store, a.Log), a.Log),
		Foods:     handlers.NewSectionHandler(views.NewSection(views.FoodSchema(), a.Store, a.Log), a.Log),
		Packing:   handlers.NewPackingHandler(packing, a.Log),

		PassphraseHash: cfg.PassphraseHash,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(a.Log))
	r.Use(middleware.Recoverer(a.Log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost, stop) {
			r.Use(mw)
		}
		a.Log.Info("production security enabled")
	}

	r.Get("/health", handlers.NewHealthHandler(a.Store, a.Log).Health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.Group(func(r chi.Router) {
		r.Use(middleware.Sessions(a.Sessions, cfg.IsProduction(), a.Log))
		routes.SetupRoutes(r, h)
	})
	return r
}

package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	SessionMemory = "memory"
	SessionRedis  = "redis"
)

type Config struct {
	Environment string `envconfig:"ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"8080"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"mongo"`
	MongoURI    string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017/tripboard"`
	PostgresURI string `envconfig:"POSTGRES_URI" default:"postgres://localhost:5432/tripboard?sslmode=disable"`

	SessionBackend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	RedisURI       string        `envconfig:"REDIS_URI" default:"redis://localhost:6379/0"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	SeedFile       string        `envconfig:"SEED_FILE"`

	// TimeZone is used to parse and display flight and hotel timestamps.
	TimeZone string         `envconfig:"TRIP_TIMEZONE" default:"CET"`
	Location *time.Location `ignored:"true"`

	GeocoderURL       string `envconfig:"GEOCODER_URL" default:"https://nominatim.openstreetmap.org"`
	GeocoderUserAgent string `envconfig:"GEOCODER_USER_AGENT" default:"travel_itinerary"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// AllowedHost enables the production Host header check when set.
	AllowedHost    string `envconfig:"ALLOWED_HOST"`
	TrustProxy     bool   `envconfig:"TRUST_PROXY" default:"false"`
	PassphraseHash string `envconfig:"PASSPHRASE_HASH"`

	CloudinaryName      string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `envconfig:"CLOUDINARY_API_SECRET"`
	HeroImage           string `envconfig:"HERO_IMAGE" default:"southKoreaHero"`

	// StaticDir is served under /static; the hero image falls back to it.
	StaticDir string `envconfig:"STATIC_DIR" default:"static"`
}

// Load reads the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	cfg.AllowedOrigins = parseOrigins(cfg.AllowedOrigins)

	switch cfg.StoreDriver {
	case StoreMongo, StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %s", cfg.StoreDriver)
	}
	switch cfg.SessionBackend {
	case SessionMemory, SessionRedis:
	default:
		return nil, fmt.Errorf("unsupported SESSION_BACKEND: %s", cfg.SessionBackend)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TRIP_TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	return &cfg, nil
}

func parseOrigins(in []string) []string {
	var out []string
	for _, part := range in {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CloudinaryEnabled reports whether all Cloudinary credentials are present.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

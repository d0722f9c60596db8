package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port           string
	DatabaseURL    string
	CacheDir       string
	JWTSecret      string
	AllowedOrigins []string

	// ImageKit direct-upload tickets.
	ImageKitPrivateKey string
	ImageKitPublicKey  string
	ImageKitUploadURL  string
	UploadTicketTTL    time.Duration
}

// Load reads configuration from the environment. DATABASE_URL may be empty:
// the service then runs cache-only, which is the same degraded mode it falls
// into when Postgres is unreachable at runtime.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               os.Getenv("PORT"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		CacheDir:           os.Getenv("CACHE_DIR"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		ImageKitPrivateKey: os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		ImageKitPublicKey:  os.Getenv("IMAGEKIT_PUBLIC_KEY"),
		ImageKitUploadURL:  os.Getenv("IMAGEKIT_UPLOAD_URL"),
		UploadTicketTTL:    30 * time.Minute,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "./data/cache"
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.ImageKitUploadURL == "" {
		cfg.ImageKitUploadURL = "https://upload.imagekit.io/api/v1/files/upload"
	}

	cfg.AllowedOrigins = []string{"*"}
	if ao := os.Getenv("ALLOWED_ORIGINS"); ao != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(ao, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

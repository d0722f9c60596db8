package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jarvnw/website-umkm-store/config"
	socialproofcontroller "github.com/jarvnw/website-umkm-store/controllers/socialproof"
	"github.com/jarvnw/website-umkm-store/models"
	"github.com/jarvnw/website-umkm-store/routes"
	"github.com/jarvnw/website-umkm-store/services/media"
	"github.com/jarvnw/website-umkm-store/services/socialproof"
	"github.com/jarvnw/website-umkm-store/store"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db := initDatabase(cfg, logger)
	if db != nil {
		if err := db.AutoMigrate(
			&models.Product{},
			&models.Variation{},
			&models.CSContact{},
			&models.Testimonial{},
			&models.SiteSettings{},
			&models.AdminCredentials{},
		); err != nil {
			logger.Fatal("auto-migrate failed", zap.Error(err))
		}
	}

	cache, err := store.NewCache(cfg.CacheDir)
	if err != nil {
		logger.Fatal("failed to create cache dir", zap.Error(err))
	}
	st := store.New(db, cache, logger)

	hub := socialproofcontroller.NewHub()
	scheduler := socialproof.New(st.GetProducts, hub.Broadcast, logger)
	if settings, err := st.GetSiteSettings(); err == nil {
		scheduler.Configure(socialproof.ConfigFromSettings(settings))
	}
	defer scheduler.Stop()

	signer := media.NewSigner(cfg.ImageKitPrivateKey, cfg.UploadTicketTTL)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Config:    cfg,
		Store:     st,
		Signer:    signer,
		Scheduler: scheduler,
		Hub:       hub,
	})

	// Snapshot the local cache mirror daily at 2 AM, keep 4 days.
	go startDailyBackupAtFixedTime(cfg.CacheDir, filepath.Join(cfg.CacheDir, "..", "backup"),
		4*24*time.Hour, 2, 0, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// initDatabase opens the GORM connection. A missing or unreachable database
// is not fatal: the service degrades to cache-only operation, the same mode
// it enters when Postgres drops mid-flight.
func initDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, running cache-only")
		return nil
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Warn("database connection failed, running cache-only", zap.Error(err))
		return nil
	}
	return db
}

// startDailyBackupAtFixedTime snapshots the cache dir daily at a fixed hour
// and prunes snapshots older than retention.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int, logger *zap.Logger) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)
		if err := copyDir(srcDir, destDir); err != nil {
			logger.Warn("cache backup failed", zap.Error(err))
		} else {
			logger.Info("cache backed up", zap.String("dir", destDir))
		}

		cleanupOldBackups(backupDir, retention, logger)
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func cleanupOldBackups(backupDir string, retention time.Duration, logger *zap.Logger) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				logger.Warn("failed to remove old backup", zap.String("dir", folderPath), zap.Error(err))
			}
		}
	}
}

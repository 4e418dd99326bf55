package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/checkout"
	orderControllers "github.com/YannikAckermann/Vintage-Store/controllers/order"
	"github.com/YannikAckermann/Vintage-Store/models"
	"github.com/YannikAckermann/Vintage-Store/notify"
	"github.com/YannikAckermann/Vintage-Store/routes"
)

const defaultProcessingDelay = 2000 * time.Millisecond

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db, sqlitePath := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductDetail{},
		&models.ProductImage{},
		&models.ProductRelation{},
		&models.Tag{},
		&models.CartSnapshot{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the vintage catalog on first run
	if err := seedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	// Shared state: notification hub, per-session carts, checkout machines
	hub := notify.NewHub()
	carts := cart.NewManager(cart.GormStorage{DB: db}, hub)
	checkouts := checkout.NewManager(processingDelay(), nil, orderControllers.Recorder(db, hub))

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, carts, checkouts, hub)

	// Back up the sqlite database daily at 2 AM, keep 4 days of backups
	if sqlitePath != "" {
		backupDir := os.Getenv("BACKUP_DIR")
		if backupDir == "" {
			backupDir = "backup"
		}
		go startDailyBackupAtFixedTime(sqlitePath, backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection: Postgres when configured,
// otherwise a local sqlite file. The sqlite path is returned so the backup
// routine knows what to copy.
func initDatabase() (*gorm.DB, string) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db, ""
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ Failed to connect DB: %v", err)
		}
		return db, ""
	}

	// Local fallback
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "vintage-store.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to open sqlite DB: %v", err)
	}
	return db, path
}

// processingDelay reads the simulated payment duration from the
// environment, in milliseconds.
func processingDelay() time.Duration {
	if v := os.Getenv("PAYMENT_PROCESSING_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
		log.Printf("⚠️ Invalid PAYMENT_PROCESSING_MS %q, using default", v)
	}
	return defaultProcessingDelay
}

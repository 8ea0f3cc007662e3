// @title           Boarding House Management API
// @version         1.0
// @description     A boarding house management service covering rooms, tenants, payments, maintenance requests and reporting
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"boardinghouse-http-service/internal/app/routes"
	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"
	"boardinghouse-http-service/internal/infrastructure/database"
	Logger "boardinghouse-http-service/pkg/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Environment variables may already be set another way, so a
	// missing .env file is not fatal
	if err := godotenv.Load(); err != nil {
		Logger.Warning("Could not load .env file: %v", err)
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	if err := autoMigrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	printSystemInfo(pool)

	// Listen on all interfaces, not just localhost
	Logger.Info("Server starting on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models (adds new columns and tables only)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Room{},
		&models.Tenant{},
		&models.Payment{},
		&models.Request{},
		&models.Report{},
		&models.AdminAccount{},
		&models.LoginHistory{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// ensureAdminExists seeds a default administrator account on first run
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.AdminAccount{}).Count(&count)

	if count == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash default admin password: %v", err)
		}

		admin := models.AdminAccount{
			Username: cfg.DefaultAdminUsername,
			Password: string(hashedPassword),
			Role:     "Admin",
			FullName: "Admin User",
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create default administrator: %v", err)
		}

		log.Println("Created default administrator account")
	}
}

// printSystemInfo logs pool and runtime information at startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("Database connection pool stats: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("Goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory usage: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}

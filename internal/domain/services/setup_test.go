package services

import (
	"testing"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Room{},
		&models.Tenant{},
		&models.Payment{},
		&models.Request{},
		&models.Report{},
		&models.AdminAccount{},
		&models.LoginHistory{},
	)
	assert.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret-key",
	}
}

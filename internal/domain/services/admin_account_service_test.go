package services

import (
	"testing"

	"boardinghouse-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestGetProfileByUsername_MissingYieldsDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminAccountService(db, testConfig())

	profile, err := svc.GetProfileByUsername("ghost")
	assert.NoError(t, err)
	assert.Equal(t, "Admin User", profile.FullName)
	assert.Empty(t, profile.Username)
	assert.NotNil(t, profile.LoginHistory)
	assert.Empty(t, profile.LoginHistory)
}

func TestUpdatePassword_WrongCurrentIsSilentNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminAccountService(db, testConfig())

	admin := &models.AdminAccount{Username: "admin", Password: "correct-horse"}
	assert.NoError(t, db.Create(admin).Error)
	originalHash := admin.Password

	assert.NoError(t, svc.UpdatePassword("admin", "wrong-guess", "new-password"))

	var got models.AdminAccount
	assert.NoError(t, db.Where("username = ?", "admin").First(&got).Error)
	assert.Equal(t, originalHash, got.Password)
}

func TestUpdatePassword_BlankFieldsAreNoOps(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminAccountService(db, testConfig())

	admin := &models.AdminAccount{Username: "admin", Password: "correct-horse"}
	assert.NoError(t, db.Create(admin).Error)
	originalHash := admin.Password

	assert.NoError(t, svc.UpdatePassword("admin", "", "new-password"))
	assert.NoError(t, svc.UpdatePassword("admin", "correct-horse", ""))
	assert.NoError(t, svc.UpdatePassword("missing", "correct-horse", "new-password"))

	var got models.AdminAccount
	assert.NoError(t, db.Where("username = ?", "admin").First(&got).Error)
	assert.Equal(t, originalHash, got.Password)
}

func TestUpdatePassword_CorrectCurrentRehashes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminAccountService(db, testConfig())

	admin := &models.AdminAccount{Username: "admin", Password: "correct-horse"}
	assert.NoError(t, db.Create(admin).Error)
	originalHash := admin.Password

	assert.NoError(t, svc.UpdatePassword("admin", "correct-horse", "battery-staple"))

	var got models.AdminAccount
	assert.NoError(t, db.Where("username = ?", "admin").First(&got).Error)
	assert.NotEqual(t, originalHash, got.Password)
	assert.True(t, models.CheckPasswordHash("battery-staple", got.Password))
	assert.False(t, models.CheckPasswordHash("correct-horse", got.Password))
}

func TestUpdateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminAccountService(db, testConfig())

	admin := &models.AdminAccount{Username: "oldname", Password: "password123"}
	assert.NoError(t, db.Create(admin).Error)

	// Blank new username changes nothing
	assert.NoError(t, svc.UpdateUsername("oldname", "   "))
	var got models.AdminAccount
	assert.NoError(t, db.First(&got, admin.ID).Error)
	assert.Equal(t, "oldname", got.Username)

	assert.NoError(t, svc.UpdateUsername("oldname", "newname"))
	assert.NoError(t, db.First(&got, admin.ID).Error)
	assert.Equal(t, "newname", got.Username)
}

func TestUpdateProfile_ReplacesContactFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminAccountService(db, testConfig())

	admin := &models.AdminAccount{Username: "admin", Password: "password123", FullName: "Before"}
	assert.NoError(t, db.Create(admin).Error)

	assert.NoError(t, svc.UpdateProfile("admin", "After", "after@example.com", "09170000000"))

	var got models.AdminAccount
	assert.NoError(t, db.First(&got, admin.ID).Error)
	assert.Equal(t, "After", got.FullName)
	assert.Equal(t, "after@example.com", got.Email)
	assert.Equal(t, "09170000000", got.Phone)
}

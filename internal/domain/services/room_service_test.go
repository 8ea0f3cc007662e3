package services

import (
	"testing"

	"boardinghouse-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoomStatus(t *testing.T) {
	assert.Equal(t, "Vacant", NormalizeRoomStatus(""))
	assert.Equal(t, "Vacant", NormalizeRoomStatus("   "))
	assert.Equal(t, "Occupied", NormalizeRoomStatus("occupied"))
	assert.Equal(t, "Occupied", NormalizeRoomStatus("OCCUPIED"))
	assert.Equal(t, "Maintenance", NormalizeRoomStatus("mAiNtEnAnCe"))
}

func TestCreateRoom_DefaultsStatusToVacant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	room := &models.Room{RoomNumber: "101", RoomType: "Single", RentPrice: 3500}
	err := svc.CreateRoom(room)
	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusVacant, room.Status)

	// A client-supplied id must not survive
	withID := &models.Room{ID: 999, RoomNumber: "102", Status: "vacant"}
	err = svc.CreateRoom(withID)
	assert.NoError(t, err)
	assert.NotEqual(t, uint(999), withID.ID)
	assert.Equal(t, models.RoomStatusVacant, withID.Status)
}

func TestGetVacantRooms_FiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	assert.NoError(t, svc.CreateRoom(&models.Room{RoomNumber: "201", Status: "Vacant"}))
	assert.NoError(t, svc.CreateRoom(&models.Room{RoomNumber: "202", Status: "Occupied"}))
	assert.NoError(t, svc.CreateRoom(&models.Room{RoomNumber: "203", Status: "Maintenance"}))

	rooms, err := svc.GetVacantRooms()
	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.Equal(t, "201", rooms[0].RoomNumber)
}

func TestUpdateRoom_ZeroIDIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	err := svc.UpdateRoom(&models.Room{ID: 0, RoomNumber: "999"})
	assert.NoError(t, err)

	rooms, err := svc.GetAllRooms()
	assert.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestUpdateRoom_ReplacesRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	room := &models.Room{RoomNumber: "301", RoomType: "Single", RentPrice: 3000, Status: "Vacant"}
	assert.NoError(t, svc.CreateRoom(room))

	room.RoomType = "Double"
	room.RentPrice = 4500
	room.Status = models.RoomStatusOccupied
	assert.NoError(t, svc.UpdateRoom(room))

	got, err := svc.GetRoomByID(room.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Double", got.RoomType)
	assert.Equal(t, 4500.0, got.RentPrice)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)
}

func TestArchiveRoom_ForcesMaintenance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	room := &models.Room{RoomNumber: "401", Status: "Occupied"}
	assert.NoError(t, svc.CreateRoom(room))

	assert.NoError(t, svc.ArchiveRoom(room.ID))

	got, err := svc.GetRoomByID(room.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, got.Status)
}

func TestDeleteRoom_RefusedWhileTenantsAssigned(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	room := &models.Room{RoomNumber: "501"}
	assert.NoError(t, svc.CreateRoom(room))

	tenant := models.Tenant{
		FullName: "Maria Cruz",
		Username: "maria",
		Password: "secret123",
		RoomID:   &room.ID,
	}
	assert.NoError(t, db.Create(&tenant).Error)

	err := svc.DeleteRoom(room.ID)
	assert.ErrorIs(t, err, ErrRoomHasTenants)

	// The room must still be there
	got, err := svc.GetRoomByID(room.ID)
	assert.NoError(t, err)
	assert.Equal(t, "501", got.RoomNumber)
}

func TestDeleteRoom_RemovesUnoccupiedRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	room := &models.Room{RoomNumber: "502"}
	assert.NoError(t, svc.CreateRoom(room))

	assert.NoError(t, svc.DeleteRoom(room.ID))

	_, err := svc.GetRoomByID(room.ID)
	assert.Error(t, err)
}

func TestDeleteRoom_MissingIDIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())

	assert.NoError(t, svc.DeleteRoom(12345))
	assert.NoError(t, svc.DeleteRoom(0))
}

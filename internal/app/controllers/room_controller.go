package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceRoomController defines the room controller interface
type InterfaceRoomController interface {
	GetRooms()
	CreateRoom()
	UpdateRoom()
	ArchiveRoom()
	DeleteRoom()
}

// RoomController handles room management requests
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController creates a new room controller
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomRequest represents a room create/update payload
type RoomRequest struct {
	RoomNumber       string  `json:"room_number" binding:"required" example:"101"`
	RoomType         string  `json:"room_type" example:"Single"`
	Capacity         int     `json:"capacity" example:"2"`
	CurrentOccupants int     `json:"current_occupants" example:"0"`
	RentPrice        float64 `json:"rent_price" example:"3500"`
	Deposit          float64 `json:"deposit" example:"1000"`
	Status           string  `json:"status" example:"Vacant"`
	Description      string  `json:"description" example:"Corner room, second floor"`
}

// HandleRoomFunc returns a gin handler dispatching room requests
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "archiveRoom":
			controller.ArchiveRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetRooms lists all rooms
// @Summary      List rooms
// @Description  All rooms ordered by room number ascending
// @Tags         Room
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/rooms [get]
func (c *RoomController) GetRooms() {
	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	rooms, err := roomService.GetAllRooms()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, rooms)
}

// CreateRoom adds a room
// @Summary      Add room
// @Description  Creates a room; a blank status defaults to Vacant and any status is normalized to capitalized form
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        request body RoomRequest true "Room fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Room}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	room := &models.Room{
		RoomNumber:       req.RoomNumber,
		RoomType:         req.RoomType,
		Capacity:         req.Capacity,
		CurrentOccupants: req.CurrentOccupants,
		RentPrice:        req.RentPrice,
		Deposit:          req.Deposit,
		Status:           req.Status,
		Description:      req.Description,
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.CreateRoom(room); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, room)
}

// UpdateRoom replaces a room record
// @Summary      Update room
// @Description  Whole-record field replace by id; a nonexistent id is a silent no-op
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        id path int true "Room ID"
// @Param        request body RoomRequest true "Room fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
	idUint, ok := c.roomID()
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	room := &models.Room{
		ID:               idUint,
		RoomNumber:       req.RoomNumber,
		RoomType:         req.RoomType,
		Capacity:         req.Capacity,
		CurrentOccupants: req.CurrentOccupants,
		RentPrice:        req.RentPrice,
		Deposit:          req.Deposit,
		Status:           req.Status,
		Description:      req.Description,
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.UpdateRoom(room); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// ArchiveRoom puts a room into Maintenance
// @Summary      Archive room
// @Description  Forces the room status to Maintenance regardless of occupancy
// @Tags         Room
// @Produce      json
// @Param        id path int true "Room ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/rooms/{id}/archive [post]
func (c *RoomController) ArchiveRoom() {
	idUint, ok := c.roomID()
	if !ok {
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.ArchiveRoom(idUint); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// DeleteRoom hard-deletes a room
// @Summary      Delete room
// @Description  Refused while any tenant references the room
// @Tags         Room
// @Produce      json
// @Param        id path int true "Room ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	idUint, ok := c.roomID()
	if !ok {
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.DeleteRoom(idUint); err != nil {
		if errors.Is(err, services.ErrRoomHasTenants) {
			response.Fail(c.Ctx, code.ErrRoomHasTenants, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// roomID parses the id path parameter, responding on failure
func (c *RoomController) roomID() (uint, bool) {
	id := c.Ctx.Param("id")
	idUint, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid room ID")
		return 0, false
	}
	return uint(idUint), true
}

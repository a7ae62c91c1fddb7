package controllers

import (
	"strconv"

	"guesthub/config"
	"guesthub/constants"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"

	"github.com/gin-gonic/gin"
)

func GetRooms(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	floorFilter := c.Query("floor")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Room{}).
		Where("hotel_id = ? AND is_deleted = ?", hotelID, false)

	if floorFilter != "" {
		tx = tx.Where("floor = ?", floorFilter)
	}

	var totalRooms int64
	if err := tx.Count(&totalRooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := tx.Order("room_number asc").
		Offset(page * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	occupied, err := occupiedRoomIDs(rooms)
	if err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, buildRoomResponse(room, occupied[room.ID]))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, int(totalRooms))
}

func CreateRoom(c *gin.Context) {
	var input dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing int64
	if err := config.DB.Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ? AND is_deleted = ?",
			input.HotelID, input.RoomNumber, false).
		Count(&existing).Error; err != nil {
		response.ServerError(c)
		return
	}
	if existing > 0 {
		response.Conflict(c, "Room number already exists for this hotel")
		return
	}

	room := models.Room{
		HotelID:    input.HotelID,
		RoomNumber: input.RoomNumber,
		Floor:      input.Floor,
		Notes:      input.Notes,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildRoomResponse(room, false))
}

func UpdateRoom(c *gin.Context) {
	var input dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = ?", input.ID, false).
		First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.RoomNumber != "" && input.RoomNumber != room.RoomNumber {
		var existing int64
		if err := config.DB.Model(&models.Room{}).
			Where("hotel_id = ? AND room_number = ? AND is_deleted = ? AND id <> ?",
				room.HotelID, input.RoomNumber, false, room.ID).
			Count(&existing).Error; err != nil {
			response.ServerError(c)
			return
		}
		if existing > 0 {
			response.Conflict(c, "Room number already exists for this hotel")
			return
		}
		room.RoomNumber = input.RoomNumber
	}
	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.Notes != nil {
		room.Notes = *input.Notes
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	occupied, err := occupiedRoomIDs([]models.Room{room})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildRoomResponse(room, occupied[room.ID]))
}

// DeleteRoom soft-deletes a room. Rooms with an active booking are kept
// until the guest checks out.
func DeleteRoom(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = ?", roomID, false).
		First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	var activeCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND is_deleted = ?",
			room.ID,
			[]string{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn},
			false).
		Count(&activeCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if activeCount > 0 {
		response.Conflict(c, "Room has an active booking")
		return
	}

	room.IsDeleted = true
	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// occupiedRoomIDs returns which of the given rooms currently hold an
// active booking.
func occupiedRoomIDs(rooms []models.Room) (map[uint]bool, error) {
	occupied := make(map[uint]bool)
	if len(rooms) == 0 {
		return occupied, nil
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	var activeRoomIDs []uint
	if err := config.DB.Model(&models.Booking{}).
		Where("room_id IN ? AND status IN ? AND is_deleted = ?",
			roomIDs,
			[]string{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn},
			false).
		Pluck("room_id", &activeRoomIDs).Error; err != nil {
		return nil, err
	}

	for _, id := range activeRoomIDs {
		occupied[id] = true
	}
	return occupied, nil
}

func buildRoomResponse(room models.Room, occupied bool) dto.RoomResponse {
	return dto.RoomResponse{
		ID:         room.ID,
		HotelID:    room.HotelID,
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Notes:      room.Notes,
		Occupied:   occupied,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

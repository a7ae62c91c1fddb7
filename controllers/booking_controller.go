package controllers

import (
	"strconv"
	"time"

	"guesthub/config"
	"guesthub/constants"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/validator"

	"github.com/gin-gonic/gin"
)

// CheckIn creates a stay and marks the guest as in the room. A room can
// hold only one active booking at a time.
func CheckIn(c *gin.Context) {
	var input dto.CheckInRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND hotel_id = ? AND is_deleted = ?",
		input.RoomID, input.HotelID, false).First(&room).Error; err != nil {
		response.BadRequest(c, "Unknown room for this hotel")
		return
	}

	var activeCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND is_deleted = ?",
			input.RoomID,
			[]string{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn},
			false).
		Count(&activeCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if activeCount > 0 {
		response.Conflict(c, "Room already has an active booking")
		return
	}

	checkInDate := time.Now()
	if input.CheckInDate != nil {
		checkInDate = *input.CheckInDate
	}

	booking := models.Booking{
		HotelID:      input.HotelID,
		RoomID:       input.RoomID,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
		GuestPhone:   input.GuestPhone,
		CheckInDate:  checkInDate,
		CheckOutDate: input.CheckOutDate,
		Status:       constants.BookingStatusConfirmed,
	}

	if err := validator.ValidateBooking(&booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	state := models.GetBookingState(booking.Status)
	if err := state.CheckIn(&booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	booking.Room = &room
	response.Success(c, buildBookingResponse(booking))
}

// CheckOut closes the stay. The folio stays queryable afterwards.
func CheckOut(c *gin.Context) {
	var input dto.CheckOutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").
		Where("id = ? AND is_deleted = ?", input.BookingID, false).
		First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	state := models.GetBookingState(booking.Status)
	if err := state.CheckOut(&booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.GuestName != "" {
		booking.GuestName = input.GuestName
	}
	if input.GuestEmail != "" {
		booking.GuestEmail = input.GuestEmail
	}
	if input.GuestPhone != "" {
		booking.GuestPhone = input.GuestPhone
	}

	now := time.Now()
	booking.CheckOutDate = &now

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildBookingResponse(booking))
}

func GetBookings(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	roomFilter := c.Query("roomNumber")
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

	tx := config.DB.Model(&models.Booking{}).
		Where("bookings.hotel_id = ? AND bookings.is_deleted = ?", hotelID, false)

	if statusFilter != "" {
		tx = tx.Where("bookings.status = ?", statusFilter)
	}
	if roomFilter != "" {
		tx = tx.Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Where("rooms.room_number = ?", roomFilter)
	}

	var totalBookings int64
	if err := tx.Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Preload("Room").Order("bookings.created_at desc").
		Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, buildBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(totalBookings))
}

func GetBookingDetail(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("Room").
		Where("id = ? AND is_deleted = ?", bookingID, false).
		First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, buildBookingResponse(booking))
}

// DeleteBooking soft-deletes a stay. The row stays for folio history.
func DeleteBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking.IsDeleted = true
	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func buildBookingResponse(booking models.Booking) dto.BookingResponse {
	roomNumber := ""
	if booking.Room != nil {
		roomNumber = booking.Room.RoomNumber
	}

	return dto.BookingResponse{
		ID:            booking.ID,
		HotelID:       booking.HotelID,
		RoomID:        booking.RoomID,
		RoomNumber:    roomNumber,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		GuestPhone:    booking.GuestPhone,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

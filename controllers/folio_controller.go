package controllers

import (
	"strconv"
	"time"

	"guesthub/config"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"
	"guesthub/validator"

	"github.com/gin-gonic/gin"
)

// GetFolios lists settled-stay folios for the front desk. Folios with no
// orders and a zero total never show up.
func GetFolios(c *gin.Context) {
	hotelIDStr := c.Query("hotelId")
	hotelID, err := strconv.ParseUint(hotelIDStr, 10, 64)
	if err != nil || hotelID == 0 {
		response.BadRequest(c, "hotelId is required")
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filters := services.FolioFilters{
		PaymentStatus: c.Query("paymentStatus"),
		RoomNumber:    c.Query("roomNumber"),
		GuestName:     c.Query("guestName"),
		Limit:         limit,
	}

	folios, err := services.ListFolios(config.DB, uint(hotelID), filters)
	if err != nil {
		response.ServerError(c)
		return
	}

	folioResponses := make([]dto.FolioResponse, 0, len(folios))
	for _, folio := range folios {
		folioResponses = append(folioResponses, buildFolioResponse(folio))
	}

	response.Success(c, folioResponses)
}

func GetFolioDetail(c *gin.Context) {
	bookingIDStr := c.Param("id")
	bookingID, err := strconv.ParseUint(bookingIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	folio, err := services.GetFolio(config.DB, uint(bookingID))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, buildFolioResponse(*folio))
}

// UpsertAdjustment records front-desk POS reconciliation numbers against a
// folio. Creating the adjustment settles the folio; later edits only change
// the stored figures.
func UpsertAdjustment(c *gin.Context) {
	bookingIDStr := c.Param("id")
	bookingID, err := strconv.ParseUint(bookingIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var input dto.UpsertAdjustmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	actorID := uint(0)
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			actorID = id
		}
	}

	adj := &models.FolioAdjustment{
		SubtotalAmount:   input.SubtotalAmount,
		TaxAmount:        input.TaxAmount,
		FinalAmount:      input.FinalAmount,
		POSReceiptNumber: input.POSReceiptNumber,
		Notes:            input.Notes,
		AdjustedAt:       time.Now(),
	}

	if err := validator.ValidateAdjustment(adj); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saved, err := services.UpsertAdjustment(config.DB, uint(bookingID), adj, actorID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, saved)
}

// MarkFolioPaid settles every order on the stay in one transaction
func MarkFolioPaid(c *gin.Context) {
	var input dto.MarkFolioPaidRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ? AND is_deleted = ?", input.BookingID, false).
		First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := services.MarkFolioPaid(config.DB, input.BookingID); err != nil {
		response.ServerError(c)
		return
	}

	invalidateOrderCache(booking.HotelID)

	folio, err := services.GetFolio(config.DB, input.BookingID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildFolioResponse(*folio))
}

func buildFolioResponse(folio services.Folio) dto.FolioResponse {
	orderSummaries := make([]dto.FolioOrderSummary, 0, len(folio.Orders))
	for _, order := range folio.Orders {
		orderSummaries = append(orderSummaries, dto.FolioOrderSummary{
			ID:            order.ID,
			OrderNumber:   order.OrderNumber,
			TotalAmount:   order.TotalAmount,
			PaymentStatus: order.PaymentStatus,
			Status:        order.Status,
			CreatedAt:     order.CreatedAt,
		})
	}

	roomNumber := ""
	if folio.Booking.Room != nil {
		roomNumber = folio.Booking.Room.RoomNumber
	}

	resp := dto.FolioResponse{
		BookingID:     folio.Booking.ID,
		RoomNumber:    roomNumber,
		GuestName:     folio.Booking.GuestName,
		CheckInDate:   folio.Booking.CheckInDate,
		CheckOutDate:  folio.Booking.CheckOutDate,
		Orders:        orderSummaries,
		TotalAmount:   folio.TotalAmount,
		PaymentStatus: folio.PaymentStatus,
	}

	if folio.Adjustment != nil {
		resp.Adjustment = &dto.FolioAdjustmentResponse{
			SubtotalAmount:   folio.Adjustment.SubtotalAmount,
			TaxAmount:        folio.Adjustment.TaxAmount,
			FinalAmount:      folio.Adjustment.FinalAmount,
			POSReceiptNumber: folio.Adjustment.POSReceiptNumber,
			Notes:            folio.Adjustment.Notes,
			AdjustedAt:       folio.Adjustment.AdjustedAt,
			AdjustedBy:       folio.Adjustment.AdjustedBy,
		}
	}

	return resp
}

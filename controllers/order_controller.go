package controllers

import (
	"log"
	"strconv"
	"time"

	"guesthub/builders"
	"guesthub/commands"
	"guesthub/config"
	"guesthub/constants"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type OrderController struct {
	db *gorm.DB
	m  *melody.Melody
}

func NewOrderController(db *gorm.DB, m *melody.Melody) *OrderController {
	return &OrderController{db: db, m: m}
}

// CreateOrder is the guest checkout. The cart is normalized, each line gets
// its promotion discount resolved against the hotel-local clock, items are
// tagged with their fulfilment department and the order is persisted with a
// fresh order number.
func (o *OrderController) CreateOrder(c *gin.Context) {
	var input dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := services.NormalizeCart(input.Items)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := o.db.Where("id = ? AND hotel_id = ?", input.RoomID, input.HotelID).
		First(&room).Error; err != nil {
		response.BadRequest(c, "Unknown room for this hotel")
		return
	}

	// Attach the room's active stay when the caller did not name one
	bookingID := input.BookingID
	guestName := input.GuestName
	if bookingID == nil {
		var booking models.Booking
		if err := o.db.Where("room_id = ? AND status IN ? AND is_deleted = ?",
			input.RoomID,
			[]string{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn},
			false).
			Order("created_at desc").First(&booking).Error; err == nil {
			bookingID = &booking.ID
			if guestName == "" {
				guestName = booking.GuestName
			}
		}
	}

	promotions, err := services.LoadActivePromotions(o.db, input.HotelID)
	if err != nil {
		response.ServerError(c)
		return
	}

	var hotel models.Hotel
	now := time.Now()
	if err := o.db.First(&hotel, input.HotelID).Error; err == nil {
		now = now.In(hotel.Location())
	}

	quote := priceCart(cart, promotions, now)

	var promotionID *uint
	items := make([]models.OrderItem, 0, len(cart))
	for i, line := range cart {
		quoted := quote.Items[i]

		department := constants.DepartmentKitchen
		if line.ServiceID != nil {
			var svc models.HotelService
			if err := o.db.First(&svc, *line.ServiceID).Error; err == nil {
				department = svc.Department()
			}
		}

		if quoted.PromotionID != nil && promotionID == nil {
			promotionID = quoted.PromotionID
		}

		items = append(items, models.OrderItem{
			ServiceID:    line.ServiceID,
			ProductID:    line.ProductID,
			MenuItemName: line.Name,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			TotalPrice:   quoted.LineTotal,
			Department:   department,
			Status:       constants.ItemStatusPending,
			Notes:        line.Notes,
		})
	}

	orderNumber, err := services.GenerateOrderNumber(o.db)
	if err != nil {
		response.ServerError(c)
		return
	}

	total := services.RoundMoney(quote.Total + input.TipAmount)

	order := builders.NewOrderBuilder().
		WithHotel(input.HotelID).
		WithRoom(input.RoomID).
		WithBooking(bookingID).
		WithGuestInfo(guestName, input.GuestEmail).
		WithOrderNumber(orderNumber).
		WithStatus(constants.OrderStatusPending).
		WithItems(items).
		WithAmounts(quote.Subtotal, quote.DiscountAmount, 0, input.TipAmount, 0, total).
		WithPromotion(promotionID).
		WithNotes(input.Notes).
		Build()

	createCmd := commands.NewCreateOrderCommand(order, o.db)
	if err := createCmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	invalidateOrderCache(input.HotelID)
	services.BroadcastNewOrder(o.m, *order)

	if input.GuestEmail != "" {
		go func(email, number string, total float64, roomNumber string) {
			if err := services.SendOrderConfirmationEmail(email, number, total, roomNumber); err != nil {
				log.Println("Error sending order confirmation email:", err)
			}
		}(input.GuestEmail, order.OrderNumber, order.TotalAmount, room.RoomNumber)
	}

	response.Success(c, o.buildOrderResponse(*order, &room))
}

func (o *OrderController) GetOrders(c *gin.Context) {
	hotelIDStr := c.Query("hotelId")
	if hotelIDStr == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	paymentFilter := c.Query("paymentStatus")
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

	cacheKey := "orders:hotel:" + hotelIDStr
	rdb, rdbErr := config.ConnectRedis()

	var allOrders []models.Order
	if rdbErr != nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allOrders) != nil || len(allOrders) == 0 {
		if err := o.db.Preload("Items").Preload("Room").
			Where("hotel_id = ? AND is_deleted = ?", hotelIDStr, false).
			Order("created_at desc").Find(&allOrders).Error; err != nil {
			response.ServerError(c)
			return
		}

		if rdbErr == nil {
			_ = services.SetToRedis(config.Ctx, rdb, cacheKey, allOrders, 5*time.Minute)
		}
	}

	filtered := make([]models.Order, 0, len(allOrders))
	for _, order := range allOrders {
		if statusFilter != "" && order.Status != statusFilter {
			continue
		}
		if paymentFilter != "" && order.PaymentStatus != paymentFilter {
			continue
		}
		if roomFilter != "" && (order.Room == nil || order.Room.RoomNumber != roomFilter) {
			continue
		}
		filtered = append(filtered, order)
	}

	total := len(filtered)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	orderResponses := make([]dto.OrderResponse, 0, end-start)
	for _, order := range filtered[start:end] {
		orderResponses = append(orderResponses, o.buildOrderResponse(order, order.Room))
	}

	response.SuccessWithPagination(c, orderResponses, page, limit, total)
}

func (o *OrderController) GetOrderDetail(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := o.db.Preload("Items").Preload("Room").
		Where("id = ? AND is_deleted = ?", orderID, false).
		First(&order).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, o.buildOrderResponse(order, order.Room))
}

// ChangeOrderStatus is the explicit staff override. It accepts any known
// status; subsequent item updates re-derive the order status only while it
// stays in a sync-writable state.
func (o *OrderController) ChangeOrderStatus(c *gin.Context) {
	var input dto.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	switch input.Status {
	case constants.OrderStatusPending, constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing, constants.OrderStatusReady,
		constants.OrderStatusOutForDelivery, constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
	default:
		response.BadRequest(c, "Unknown order status: "+input.Status)
		return
	}

	var order models.Order
	if err := o.db.Preload("Items").Preload("Room").
		Where("id = ? AND is_deleted = ?", input.ID, false).
		First(&order).Error; err != nil {
		response.NotFound(c)
		return
	}

	order.Status = input.Status
	updateCmd := commands.NewUpdateOrderCommand(&order, o.db)
	if err := updateCmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	invalidateOrderCache(order.HotelID)

	response.Success(c, o.buildOrderResponse(order, order.Room))
}

func (o *OrderController) CancelOrder(c *gin.Context) {
	orderIDStr := c.Param("id")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var order models.Order
	if err := o.db.Where("id = ? AND is_deleted = ?", orderID, false).
		First(&order).Error; err != nil {
		response.NotFound(c)
		return
	}

	if order.Status == constants.OrderStatusDelivered {
		response.BadRequest(c, "Delivered orders cannot be cancelled")
		return
	}

	cancelCmd := commands.NewCancelOrderCommand(uint(orderID), o.db)
	if err := cancelCmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	invalidateOrderCache(order.HotelID)

	response.Success(c, nil)
}

func (o *OrderController) buildOrderResponse(order models.Order, room *models.Room) dto.OrderResponse {
	itemResponses := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		itemResponses = append(itemResponses, dto.OrderItemResponse{
			ID:           item.ID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
			Department:   item.Department,
			Status:       item.Status,
			Notes:        item.Notes,
		})
	}

	roomNumber := ""
	if room != nil {
		roomNumber = room.RoomNumber
	}

	return dto.OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		HotelID:        order.HotelID,
		RoomNumber:     roomNumber,
		BookingID:      order.BookingID,
		GuestName:      order.GuestName,
		Items:          itemResponses,
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TaxAmount:      order.TaxAmount,
		TipAmount:      order.TipAmount,
		DeliveryFee:    order.DeliveryFee,
		TotalAmount:    order.TotalAmount,
		Status:         order.Status,
		KitchenStatus:  services.DeriveDepartmentStatus(order.Items, constants.DepartmentKitchen),
		BarStatus:      services.DeriveDepartmentStatus(order.Items, constants.DepartmentBar),
		PaymentStatus:  order.PaymentStatus,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

func invalidateOrderCache(hotelID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "orders:hotel:"+strconv.FormatUint(uint64(hotelID), 10))
}

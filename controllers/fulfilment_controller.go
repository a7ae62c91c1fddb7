package controllers

import (
	"guesthub/constants"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type FulfilmentController struct {
	db *gorm.DB
	m  *melody.Melody
}

func NewFulfilmentController(db *gorm.DB, m *melody.Melody) *FulfilmentController {
	return &FulfilmentController{db: db, m: m}
}

// GetQueue lists the live items for one department display, oldest first.
// Delivered and cancelled items drop off the queue.
func (f *FulfilmentController) GetQueue(c *gin.Context) {
	hotelID := c.Query("hotelId")
	department := c.Query("department")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}
	if department != constants.DepartmentKitchen && department != constants.DepartmentBar {
		response.BadRequest(c, "department must be kitchen or bar")
		return
	}

	var items []models.OrderItem
	if err := f.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.hotel_id = ? AND orders.is_deleted = ?", hotelID, false).
		Where("orders.status NOT IN ?", []string{constants.OrderStatusCancelled}).
		Where("order_items.department = ?", department).
		Where("order_items.status IN ?", []string{
			constants.ItemStatusPending,
			constants.ItemStatusPreparing,
			constants.ItemStatusReady,
		}).
		Order("order_items.created_at asc").
		Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Group the queue by order so displays can render tickets
	orderIDs := make([]uint, 0, len(items))
	seen := make(map[uint]bool)
	for _, item := range items {
		if !seen[item.OrderID] {
			seen[item.OrderID] = true
			orderIDs = append(orderIDs, item.OrderID)
		}
	}

	var orders []models.Order
	if len(orderIDs) > 0 {
		if err := f.db.Preload("Items").Preload("Room").
			Where("id IN ?", orderIDs).Find(&orders).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	ordersByID := make(map[uint]models.Order, len(orders))
	for _, order := range orders {
		ordersByID[order.ID] = order
	}

	type queueTicket struct {
		OrderID     uint               `json:"orderId"`
		OrderNumber string             `json:"orderNumber"`
		RoomNumber  string             `json:"roomNumber"`
		Status      string             `json:"status"`
		Items       []models.OrderItem `json:"items"`
	}

	tickets := make([]queueTicket, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		order := ordersByID[orderID]
		roomNumber := ""
		if order.Room != nil {
			roomNumber = order.Room.RoomNumber
		}

		var orderItems []models.OrderItem
		for _, item := range items {
			if item.OrderID == orderID {
				orderItems = append(orderItems, item)
			}
		}

		tickets = append(tickets, queueTicket{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			RoomNumber:  roomNumber,
			Status:      services.DeriveDepartmentStatus(order.Items, c.Query("department")),
			Items:       orderItems,
		})
	}

	response.Success(c, tickets)
}

// UpdateItemStatus advances one item and re-derives the parent order status.
// Item statuses only move forward; the websocket hub tells displays about
// the change.
func (f *FulfilmentController) UpdateItemStatus(c *gin.Context) {
	var input dto.UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var item models.OrderItem
	if err := f.db.First(&item, input.ItemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := services.AdvanceItemStatus(&item, input.Status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := f.db.Save(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	var order models.Order
	if err := f.db.Preload("Items").First(&order, item.OrderID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SyncOrderStatus(f.db, &order); err != nil {
		response.ServerError(c)
		return
	}

	invalidateOrderCache(order.HotelID)
	services.BroadcastItemUpdate(f.m, item, order.Status)

	response.Success(c, gin.H{
		"item":        item,
		"orderStatus": order.Status,
	})
}

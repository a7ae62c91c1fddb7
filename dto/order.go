package dto

import "time"

// CreateOrderRequest is the guest checkout payload. Items are raw maps
// normalized at the boundary (see services.NormalizeCart).
type CreateOrderRequest struct {
	HotelID    uint                     `json:"hotelId" binding:"required"`
	RoomID     uint                     `json:"roomId" binding:"required"`
	BookingID  *uint                    `json:"bookingId,omitempty"`
	GuestName  string                   `json:"guestName,omitempty"`
	GuestEmail string                   `json:"guestEmail,omitempty"`
	TipAmount  float64                  `json:"tipAmount"`
	Notes      string                   `json:"notes"`
	Items      []map[string]interface{} `json:"items" binding:"required"`
}

type OrderItemResponse struct {
	ID           uint    `json:"id"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	Department   string  `json:"department"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID             uint                `json:"id"`
	OrderNumber    string              `json:"orderNumber"`
	HotelID        uint                `json:"hotelId"`
	RoomNumber     string              `json:"roomNumber,omitempty"`
	BookingID      *uint               `json:"bookingId,omitempty"`
	GuestName      string              `json:"guestName,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       float64             `json:"subtotal"`
	DiscountAmount float64             `json:"discountAmount"`
	TaxAmount      float64             `json:"taxAmount"`
	TipAmount      float64             `json:"tipAmount"`
	DeliveryFee    float64             `json:"deliveryFee"`
	TotalAmount    float64             `json:"totalAmount"`
	Status         string              `json:"status"`
	KitchenStatus  string              `json:"kitchenStatus"`
	BarStatus      string              `json:"barStatus"`
	PaymentStatus  string              `json:"paymentStatus"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type ChangeOrderStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type UpdateItemStatusRequest struct {
	ItemID uint   `json:"itemId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

package models

import (
	"time"
)

// Order is one guest checkout against a room. Payment status moves only
// through folio settlement; fulfilment status moves through the item-status
// sync and explicit staff actions.
type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	OrderNumber    string      `json:"orderNumber" gorm:"unique;size:32"`
	HotelID        uint        `json:"hotelId" gorm:"index;not null"`
	BookingID      *uint       `json:"bookingId" gorm:"index"`
	Booking        *Booking    `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	RoomID         uint        `json:"roomId" gorm:"index"`
	Room           *Room       `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	GuestName      string      `json:"guestName,omitempty"`
	GuestEmail     string      `json:"guestEmail,omitempty"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Subtotal       float64     `json:"subtotal"`
	DiscountAmount float64     `json:"discountAmount"`
	TaxAmount      float64     `json:"taxAmount"`
	TipAmount      float64     `json:"tipAmount"`
	DeliveryFee    float64     `json:"deliveryFee"`
	TotalAmount    float64     `json:"totalAmount"`
	PromotionID    *uint       `json:"promotionId,omitempty"`
	Status         string      `json:"status" gorm:"default:pending"`
	PaymentStatus  string      `json:"paymentStatus" gorm:"default:pending"`
	Notes          string      `json:"notes"`
	IsDeleted      bool        `json:"isDeleted" gorm:"default:false"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

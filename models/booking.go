package models

import (
	"time"
)

// Booking is one guest stay in one room. A room has at most one active
// (confirmed or checked_in) booking at a time, enforced by query at
// check-in. Soft-deleted bookings are hidden everywhere but never removed.
type Booking struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	HotelID       uint       `json:"hotelId" gorm:"index;not null"`
	RoomID        uint       `json:"roomId" gorm:"index;not null"`
	Room          *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	GuestName     string     `json:"guestName"`
	GuestEmail    string     `json:"guestEmail"`
	GuestPhone    string     `json:"guestPhone"`
	CheckInDate   time.Time  `json:"checkInDate"`
	CheckOutDate  *time.Time `json:"checkOutDate,omitempty"`
	Status        string     `json:"status" gorm:"default:confirmed"` // confirmed | checked_in | checked_out
	PaymentStatus string     `json:"paymentStatus" gorm:"default:pending"`
	IsDeleted     bool       `json:"isDeleted" gorm:"default:false"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

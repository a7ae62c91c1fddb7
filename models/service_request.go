package models

import (
	"time"
)

// ServiceRequest is a guest ticket routed to hotel operations staff.
type ServiceRequest struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	HotelID     uint       `json:"hotelId" gorm:"index;not null"`
	RoomID      uint       `json:"roomId" gorm:"index"`
	Room        *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	BookingID   *uint      `json:"bookingId,omitempty"`
	GuestName   string     `json:"guestName"`
	Category    string     `json:"category"` // housekeeping | maintenance | concierge | other
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" gorm:"default:normal"`
	Status      string     `json:"status" gorm:"default:open"`
	AssignedTo  *uint      `json:"assignedTo,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

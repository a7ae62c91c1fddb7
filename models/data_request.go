package models

import (
	"time"
)

// DataRequest is a data-subject request filed against a guest identity.
// Deletion requests anonymize the guest's display name; bookings and orders
// stay intact so folios keep aggregating.
type DataRequest struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	HotelID     uint       `json:"hotelId" gorm:"index;not null"`
	BookingID   *uint      `json:"bookingId,omitempty"`
	GuestName   string     `json:"guestName"`
	GuestEmail  string     `json:"guestEmail" gorm:"index"`
	RequestType string     `json:"requestType"` // deletion | export
	Status      string     `json:"status" gorm:"default:pending"`
	Notes       string     `json:"notes"`
	ProcessedBy *uint      `json:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

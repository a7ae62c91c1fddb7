package dto

import "time"

type CheckInRequest struct {
	HotelID      uint       `json:"hotelId" binding:"required"`
	RoomID       uint       `json:"roomId" binding:"required"`
	GuestName    string     `json:"guestName" binding:"required"`
	GuestEmail   string     `json:"guestEmail"`
	GuestPhone   string     `json:"guestPhone"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"`
}

type CheckOutRequest struct {
	BookingID uint `json:"bookingId" binding:"required"`
	// Optional guest-info correction applied at check-out
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}

type BookingResponse struct {
	ID            uint       `json:"id"`
	HotelID       uint       `json:"hotelId"`
	RoomID        uint       `json:"roomId"`
	RoomNumber    string     `json:"roomNumber,omitempty"`
	GuestName     string     `json:"guestName"`
	GuestEmail    string     `json:"guestEmail"`
	GuestPhone    string     `json:"guestPhone"`
	CheckInDate   time.Time  `json:"checkInDate"`
	CheckOutDate  *time.Time `json:"checkOutDate,omitempty"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

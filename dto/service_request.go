package dto

import "time"

type CreateTicketRequest struct {
	HotelID     uint   `json:"hotelId" binding:"required"`
	RoomID      *uint  `json:"roomId,omitempty"`
	BookingID   *uint  `json:"bookingId,omitempty"`
	GuestName   string `json:"guestName"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type ChangeTicketStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type AssignTicketRequest struct {
	ID         uint `json:"id" binding:"required"`
	AssigneeID uint `json:"assigneeId" binding:"required"`
}

type TicketResponse struct {
	ID          uint       `json:"id"`
	HotelID     uint       `json:"hotelId"`
	RoomNumber  string     `json:"roomNumber,omitempty"`
	GuestName   string     `json:"guestName,omitempty"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	AssigneeID  *uint      `json:"assigneeId,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

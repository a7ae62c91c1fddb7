package dto

import "time"

type CreateRoomRequest struct {
	HotelID    uint   `json:"hotelId" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	Floor      int    `json:"floor"`
	Notes      string `json:"notes"`
}

type UpdateRoomRequest struct {
	ID         uint    `json:"id" binding:"required"`
	RoomNumber string  `json:"roomNumber"`
	Floor      *int    `json:"floor"`
	Notes      *string `json:"notes"`
}

type RoomResponse struct {
	ID         uint      `json:"id"`
	HotelID    uint      `json:"hotelId"`
	RoomNumber string    `json:"roomNumber"`
	Floor      int       `json:"floor"`
	Notes      string    `json:"notes"`
	Occupied   bool      `json:"occupied"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

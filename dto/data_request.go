package dto

import "time"

type CreateDataRequestRequest struct {
	HotelID     uint   `json:"hotelId" binding:"required"`
	GuestName   string `json:"guestName" binding:"required"`
	GuestEmail  string `json:"guestEmail" binding:"required"`
	RequestType string `json:"requestType" binding:"required"`
	Notes       string `json:"notes"`
}

// UpdateDataRequestRequest moves a request through its workflow. ForceProceed
// lets an admin override the active-booking deletion gate.
type UpdateDataRequestRequest struct {
	ID           uint   `json:"id" binding:"required"`
	Status       string `json:"status" binding:"required"`
	ForceProceed bool   `json:"forceProceed"`
	Notes        string `json:"notes"`
}

type DataRequestResponse struct {
	ID          uint       `json:"id"`
	HotelID     uint       `json:"hotelId"`
	GuestName   string     `json:"guestName"`
	GuestEmail  string     `json:"guestEmail"`
	RequestType string     `json:"requestType"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	ProcessedBy *uint      `json:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

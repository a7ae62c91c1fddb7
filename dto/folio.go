package dto

import "time"

type FolioOrderSummary struct {
	ID            uint      `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type FolioAdjustmentResponse struct {
	SubtotalAmount   float64   `json:"subtotalAmount"`
	TaxAmount        float64   `json:"taxAmount"`
	FinalAmount      float64   `json:"finalAmount"`
	POSReceiptNumber string    `json:"posReceiptNumber"`
	Notes            string    `json:"notes"`
	AdjustedAt       time.Time `json:"adjustedAt"`
	AdjustedBy       uint      `json:"adjustedBy"`
}

type FolioResponse struct {
	BookingID     uint                     `json:"bookingId"`
	RoomNumber    string                   `json:"roomNumber"`
	GuestName     string                   `json:"guestName"`
	CheckInDate   time.Time                `json:"checkInDate"`
	CheckOutDate  *time.Time               `json:"checkOutDate,omitempty"`
	Orders        []FolioOrderSummary      `json:"orders"`
	TotalAmount   float64                  `json:"totalAmount"`
	PaymentStatus string                   `json:"paymentStatus"`
	Adjustment    *FolioAdjustmentResponse `json:"adjustment,omitempty"`
}

type UpsertAdjustmentRequest struct {
	SubtotalAmount   float64 `json:"subtotal_amount"`
	TaxAmount        float64 `json:"tax_amount"`
	FinalAmount      float64 `json:"final_amount"`
	POSReceiptNumber string  `json:"pos_receipt_number"`
	Notes            string  `json:"notes"`
}

type MarkFolioPaidRequest struct {
	BookingID uint `json:"bookingId" binding:"required"`
}

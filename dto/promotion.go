package dto

import "time"

type CreatePromotionRequest struct {
	HotelID              uint     `json:"hotelId" binding:"required"`
	Name                 string   `json:"name" binding:"required"`
	Description          string   `json:"description"`
	DiscountType         string   `json:"discountType" binding:"required"`
	DiscountValue        float64  `json:"discountValue"`
	MaxDiscountAmount    *float64 `json:"maxDiscountAmount,omitempty"`
	MinOrderAmount       *float64 `json:"minOrderAmount,omitempty"`
	AppliesToAllProducts bool     `json:"appliesToAllProducts"`
	EligibleServiceTypes []string `json:"eligibleServiceTypes"`
	ShowAlways           bool     `json:"showAlways"`
	StartDate            *string  `json:"startDate,omitempty"`
	EndDate              *string  `json:"endDate,omitempty"`
	StartTime            *string  `json:"startTime,omitempty"`
	EndTime              *string  `json:"endTime,omitempty"`
	DaysOfWeek           []string `json:"daysOfWeek"`
}

type UpdatePromotionRequest struct {
	ID uint `json:"id" binding:"required"`
	CreatePromotionRequest
}

type ChangePromotionStatusRequest struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}

type CreateOverrideRequest struct {
	PromotionID       uint     `json:"promotionId" binding:"required"`
	ProductID         *uint    `json:"productId,omitempty"`
	ServiceID         *uint    `json:"serviceId,omitempty"`
	MenuItemName      string   `json:"menuItemName,omitempty"`
	DiscountType      string   `json:"discountType" binding:"required"`
	DiscountValue     float64  `json:"discountValue"`
	MaxDiscountAmount *float64 `json:"maxDiscountAmount,omitempty"`
}

type PromotionResponse struct {
	ID                   uint      `json:"id"`
	HotelID              uint      `json:"hotelId"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	DiscountType         string    `json:"discountType"`
	DiscountValue        float64   `json:"discountValue"`
	MaxDiscountAmount    *float64  `json:"maxDiscountAmount,omitempty"`
	MinOrderAmount       *float64  `json:"minOrderAmount,omitempty"`
	AppliesToAllProducts bool      `json:"appliesToAllProducts"`
	EligibleServiceTypes []string  `json:"eligibleServiceTypes"`
	ShowAlways           bool      `json:"showAlways"`
	StartDate            *string   `json:"startDate,omitempty"`
	EndDate              *string   `json:"endDate,omitempty"`
	StartTime            *string   `json:"startTime,omitempty"`
	EndTime              *string   `json:"endTime,omitempty"`
	DaysOfWeek           []string  `json:"daysOfWeek"`
	IsActive             bool      `json:"isActive"`
	OverrideCount        int       `json:"overrideCount"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// CartQuoteRequest prices a cart without persisting anything. Items arrive
// as raw maps because call sites spell the fields differently.
type CartQuoteRequest struct {
	HotelID uint                     `json:"hotelId" binding:"required"`
	Items   []map[string]interface{} `json:"items" binding:"required"`
}

type QuotedItem struct {
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	LineSubtotal   float64 `json:"lineSubtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	PromotionID    *uint   `json:"promotionId,omitempty"`
	DiscountType   string  `json:"discountType,omitempty"`
	LineTotal      float64 `json:"lineTotal"`
}

type CartQuoteResponse struct {
	Items          []QuotedItem `json:"items"`
	Subtotal       float64      `json:"subtotal"`
	DiscountAmount float64      `json:"discountAmount"`
	Total          float64      `json:"total"`
	MinOrderMet    bool         `json:"minOrderMet"`
}

package models

import (
	"fmt"
	"time"
)

// FolioAdjustment is operator-entered reconciliation data for one folio,
// e.g. a front-desk POS tax total. It is never computed and only overrides
// what is displayed as the final billed amount.
type FolioAdjustment struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BookingID        uint      `json:"bookingId" gorm:"uniqueIndex;not null"`
	SubtotalAmount   float64   `json:"subtotalAmount"`
	TaxAmount        float64   `json:"taxAmount"`
	FinalAmount      float64   `json:"finalAmount"`
	POSReceiptNumber string    `json:"posReceiptNumber"`
	Notes            string    `json:"notes"`
	AdjustedAt       time.Time `json:"adjustedAt"`
	AdjustedBy       uint      `json:"adjustedBy"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *FolioAdjustment) Validate() error {
	if a.SubtotalAmount < 0 || a.TaxAmount < 0 || a.FinalAmount < 0 {
		return fmt.Errorf("adjustment amounts cannot be negative")
	}
	return nil
}

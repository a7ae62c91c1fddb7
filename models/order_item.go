package models

import (
	"time"
)

// OrderItem carries its own fulfilment status and a department tag fixed at
// creation time from the originating service's type.
type OrderItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"orderId" gorm:"index;not null"`
	ServiceID    *uint     `json:"serviceId,omitempty"`
	ProductID    *uint     `json:"productId,omitempty"`
	MenuItemName string    `json:"menuItemName"`
	Quantity     int       `json:"quantity" gorm:"default:1"`
	UnitPrice    float64   `json:"unitPrice"`
	TotalPrice   float64   `json:"totalPrice"`
	Department   string    `json:"department"` // kitchen | bar, never changes after creation
	Status       string    `json:"status" gorm:"default:pending"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

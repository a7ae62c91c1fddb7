package models

import (
	"time"
)

// PromotionItemOverride pins an item-specific discount under a promotion.
// It targets either a product id or a (service, normalized item name) pair
// and supersedes the parent promotion's general discount for that item.
type PromotionItemOverride struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	PromotionID       uint      `json:"promotionId" gorm:"index;not null;uniqueIndex:idx_override_product;uniqueIndex:idx_override_item"`
	ProductID         *uint     `json:"productId,omitempty" gorm:"uniqueIndex:idx_override_product"`
	ServiceID         *uint     `json:"serviceId,omitempty" gorm:"uniqueIndex:idx_override_item"`
	MenuItemName      string    `json:"menuItemName" gorm:"uniqueIndex:idx_override_item"` // normalized
	DiscountType      string    `json:"discountType"`
	DiscountValue     float64   `json:"discountValue"`
	MaxDiscountAmount *float64  `json:"maxDiscountAmount,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

package models

import (
	"fmt"
	"time"

	"guesthub/constants"

	"github.com/lib/pq"
)

// Promotion is a hotel-scoped discount programme. The activity window is a
// combination of optional date range, optional daily time range (HH:MM:SS,
// hotel-local) and optional day-of-week set; ShowAlways overrides all of it.
type Promotion struct {
	ID                   uint                    `json:"id" gorm:"primaryKey"`
	HotelID              uint                    `json:"hotelId" gorm:"index;not null"`
	Name                 string                  `json:"name" gorm:"not null"`
	Description          string                  `json:"description"`
	DiscountType         string                  `json:"discountType"` // percentage | fixed_amount | free_item
	DiscountValue        float64                 `json:"discountValue"`
	MaxDiscountAmount    *float64                `json:"maxDiscountAmount,omitempty"`
	MinOrderAmount       *float64                `json:"minOrderAmount,omitempty"`
	AppliesToAllProducts bool                    `json:"appliesToAllProducts" gorm:"default:false"`
	EligibleServiceTypes pq.StringArray          `json:"eligibleServiceTypes" gorm:"type:text[]"`
	ShowAlways           bool                    `json:"showAlways" gorm:"default:false"`
	StartDate            *string                 `json:"startDate,omitempty"` // 2006-01-02
	EndDate              *string                 `json:"endDate,omitempty"`
	StartTime            *string                 `json:"startTime,omitempty"` // 15:04:05
	EndTime              *string                 `json:"endTime,omitempty"`
	DaysOfWeek           pq.StringArray          `json:"daysOfWeek" gorm:"type:text[]"` // lowercase weekday names
	IsActive             bool                    `json:"isActive" gorm:"default:true"`
	IsDeleted            bool                    `json:"isDeleted" gorm:"default:false"`
	Overrides            []PromotionItemOverride `json:"overrides,omitempty" gorm:"foreignKey:PromotionID"`
	CreatedAt            time.Time               `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time               `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Promotion) ValidateDiscountType() error {
	switch p.DiscountType {
	case constants.DiscountTypePercentage, constants.DiscountTypeFixedAmount, constants.DiscountTypeFreeItem:
		return nil
	}
	return fmt.Errorf("invalid discount type: %s", p.DiscountType)
}

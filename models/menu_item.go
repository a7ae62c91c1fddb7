package models

import (
	"time"
)

type MenuItem struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	ServiceID      uint          `json:"serviceId" gorm:"index;not null"`
	Service        *HotelService `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Name           string        `json:"name" gorm:"not null"`
	NormalizedName string        `json:"-" gorm:"index"` // diacritic-folded lowercase, set on write
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	ImageURL       string        `json:"imageUrl"`
	IsAvailable    bool          `json:"isAvailable" gorm:"default:true"`
	IsDeleted      bool          `json:"isDeleted" gorm:"default:false"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

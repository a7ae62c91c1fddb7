package models

import (
	"time"
)

type Room struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	HotelID    uint      `json:"hotelId" gorm:"index;not null"`
	RoomNumber string    `json:"roomNumber" gorm:"not null"`
	Floor      int       `json:"floor"`
	Notes      string    `json:"notes"`
	IsDeleted  bool      `json:"isDeleted" gorm:"default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

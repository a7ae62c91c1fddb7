package models

import (
	"time"

	"github.com/lib/pq"
)

// User is a staff or guest account. HotelIDs scopes multi-property admins.
type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"-"`
	IsVerified    bool          `gorm:"default:false" json:"isVerified"`
	Code          string        `json:"-"`
	CodeCreatedAt time.Time     `gorm:"autoCreateTime" json:"-"`
	PhoneNumber   string        `gorm:"type:varchar(15)" json:"phoneNumber"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:0" json:"role"`
	Status        int           `gorm:"default:1" json:"status"`
	HotelID       *uint         `json:"hotelId,omitempty"`
	HotelIDs      pq.Int64Array `json:"hotelIds" gorm:"type:integer[]"`
	Department    string        `json:"department"` // kitchen | bar for fulfilment staff
}

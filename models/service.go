package models

import (
	"fmt"
	"time"

	"guesthub/constants"
)

// HotelService is a guest-facing venue: restaurant, bar, spa or room service.
type HotelService struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HotelID     uint      `json:"hotelId" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null"` // restaurant | bar | spa | room_service
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	IsDeleted   bool      `json:"isDeleted" gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Department maps the service type to the staff workflow that fulfils its
// items. Bar items go to the bar; everything else is prepared by the kitchen.
func (s *HotelService) Department() string {
	if s.Type == constants.ServiceTypeBar {
		return constants.DepartmentBar
	}
	return constants.DepartmentKitchen
}

func (s *HotelService) ValidateType() error {
	switch s.Type {
	case constants.ServiceTypeRestaurant, constants.ServiceTypeBar,
		constants.ServiceTypeSpa, constants.ServiceTypeRoomService:
		return nil
	}
	return fmt.Errorf("invalid service type: %s", s.Type)
}

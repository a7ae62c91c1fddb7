package models

import (
	"time"
)

type Hotel struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Timezone       string    `json:"timezone" gorm:"default:UTC"` // IANA name, e.g. Europe/Madrid
	Currency       string    `json:"currency" gorm:"size:3;default:USD"`
	LogoURL        string    `json:"logoUrl"`
	PrimaryColor   string    `json:"primaryColor" gorm:"default:#1a73e8"`
	WelcomeMessage string    `json:"welcomeMessage"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Location resolves the hotel's timezone, falling back to UTC when the
// stored name is empty or invalid.
func (h *Hotel) Location() *time.Location {
	if h.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

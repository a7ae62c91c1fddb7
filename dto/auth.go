package dto

import "time"

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
	HotelID     *uint  `json:"hotelId,omitempty"`
	Department  string `json:"department,omitempty"`
}

type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserLoginResponse struct {
	UserID     uint      `json:"userId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	UserPhone  string    `json:"userPhone"`
	UserRole   int       `json:"userRole"`
	HotelID    *uint     `json:"hotelId,omitempty"`
	Department string    `json:"department,omitempty"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

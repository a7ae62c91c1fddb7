package dto

type CreateServiceRequest struct {
	HotelID     uint   `json:"hotelId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

type UpdateServiceRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type CreateMenuItemRequest struct {
	ServiceID   uint    `json:"serviceId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

type UpdateMenuItemRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    string   `json:"imageUrl"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// MenuItemWithPrice is a menu item decorated with its resolved promo price
type MenuItemWithPrice struct {
	ID             uint    `json:"id"`
	ServiceID      uint    `json:"serviceId"`
	ServiceType    string  `json:"serviceType"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"imageUrl"`
	Price          float64 `json:"price"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
	PromotionID    *uint   `json:"promotionId,omitempty"`
	IsAvailable    bool    `json:"isAvailable"`
}

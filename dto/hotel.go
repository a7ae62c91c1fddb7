package dto

type UpdateBrandingRequest struct {
	ID             uint   `json:"id" binding:"required"`
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	Currency       string `json:"currency"`
	PrimaryColor   string `json:"primaryColor"`
	WelcomeMessage string `json:"welcomeMessage"`
}

type BrandingResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	Currency       string `json:"currency"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	WelcomeMessage string `json:"welcomeMessage"`
}

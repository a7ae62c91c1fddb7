package dto

import "guesthub/response"

// PaginatedResponse is the shared shape for paginated list responses
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// MenuSearchFilters is the guest menu search filter set, persisted per
// session and merged across requests
type MenuSearchFilters struct {
	Query       string   `json:"query"`
	ServiceType string   `json:"serviceType"`
	ServiceID   *uint    `json:"serviceId,omitempty"`
	PriceMin    *float64 `json:"priceMin,omitempty"`
	PriceMax    *float64 `json:"priceMax,omitempty"`
}

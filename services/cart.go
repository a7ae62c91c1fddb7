package services

import (
	"guesthub/errors"
)

// CartItem is the single internal shape for a checkout line. Cart payloads
// arrive from several call sites that spell the same concept under different
// keys, so everything is normalized here at the boundary instead of
// branching on field names throughout the business logic.
type CartItem struct {
	ServiceID    *uint   `json:"serviceId,omitempty"`
	ProductID    *uint   `json:"productId,omitempty"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Notes        string  `json:"notes,omitempty"`
}

func firstString(raw map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func firstNumber(raw map[string]interface{}, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			switch n := v.(type) {
			case float64:
				return n, true
			case int:
				return float64(n), true
			}
		}
	}
	return 0, false
}

func firstUintPtr(raw map[string]interface{}, keys ...string) *uint {
	if n, ok := firstNumber(raw, keys...); ok && n > 0 {
		u := uint(n)
		return &u
	}
	return nil
}

// NormalizeCartItem converts one loosely-keyed cart payload into a CartItem.
// Missing name or price is a validation error; missing quantity defaults
// to 1.
func NormalizeCartItem(raw map[string]interface{}) (CartItem, error) {
	item := CartItem{
		Name:      firstString(raw, "name", "menu_item_name", "menuItemName", "item_name", "title"),
		Notes:     firstString(raw, "notes", "special_instructions"),
		ServiceID: firstUintPtr(raw, "service_id", "serviceId"),
		ProductID: firstUintPtr(raw, "product_id", "productId", "menu_item_id", "menuItemId"),
	}

	if item.Name == "" {
		return item, errors.NewAppError(errors.ErrCodeRequiredField, "cart item is missing a name", nil)
	}

	price, ok := firstNumber(raw, "unit_price", "unitPrice", "price", "item_price", "amount")
	if !ok || price < 0 {
		return item, errors.NewAppError(errors.ErrCodeInvalidAmount, "cart item is missing a valid price", nil)
	}
	item.UnitPrice = price

	if qty, ok := firstNumber(raw, "quantity", "qty", "count"); ok && qty >= 1 {
		item.Quantity = int(qty)
	} else {
		item.Quantity = 1
	}

	return item, nil
}

// NormalizeCart normalizes a whole payload, rejecting empty carts
func NormalizeCart(raws []map[string]interface{}) ([]CartItem, error) {
	if len(raws) == 0 {
		return nil, errors.ErrEmptyCart
	}
	items := make([]CartItem, 0, len(raws))
	for _, raw := range raws {
		item, err := NormalizeCartItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

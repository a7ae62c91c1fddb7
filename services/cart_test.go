package services

import (
	"testing"

	"guesthub/errors"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCartItem(t *testing.T) {
	t.Run("SnakeCaseKeys", func(t *testing.T) {
		got, err := NormalizeCartItem(map[string]interface{}{
			"menu_item_name": "Club Sandwich",
			"unit_price":     14.5,
			"quantity":       float64(2),
			"service_id":     float64(3),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Club Sandwich", got.Name)
		assert.Equal(t, 14.5, got.UnitPrice)
		assert.Equal(t, 2, got.Quantity)
		assert.Equal(t, uint(3), *got.ServiceID)
	})

	t.Run("CamelCaseKeys", func(t *testing.T) {
		got, err := NormalizeCartItem(map[string]interface{}{
			"menuItemName": "Mojito",
			"unitPrice":    9.0,
			"menuItemId":   float64(12),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Mojito", got.Name)
		assert.Equal(t, uint(12), *got.ProductID)
	})

	t.Run("PriceUnderAlternateKey", func(t *testing.T) {
		got, err := NormalizeCartItem(map[string]interface{}{
			"title": "Spa Day Pass",
			"price": 60.0,
		})
		assert.NoError(t, err)
		assert.Equal(t, 60.0, got.UnitPrice)
	})

	t.Run("QuantityDefaultsToOne", func(t *testing.T) {
		got, err := NormalizeCartItem(map[string]interface{}{
			"name":  "Espresso",
			"price": 3.0,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, got.Quantity)
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := NormalizeCartItem(map[string]interface{}{"price": 3.0})
		assert.Error(t, err)
	})

	t.Run("MissingPrice", func(t *testing.T) {
		_, err := NormalizeCartItem(map[string]interface{}{"name": "Espresso"})
		assert.Error(t, err)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		_, err := NormalizeCartItem(map[string]interface{}{
			"name":  "Espresso",
			"price": -1.0,
		})
		assert.Error(t, err)
	})

	t.Run("ZeroPriceIsValid", func(t *testing.T) {
		got, err := NormalizeCartItem(map[string]interface{}{
			"name":  "Welcome Drink",
			"price": 0.0,
		})
		assert.NoError(t, err)
		assert.Equal(t, 0.0, got.UnitPrice)
	})
}

func TestNormalizeCart(t *testing.T) {
	t.Run("EmptyCartRejected", func(t *testing.T) {
		_, err := NormalizeCart(nil)
		assert.ErrorIs(t, err, errors.ErrEmptyCart)
	})

	t.Run("OneBadLineFailsTheCart", func(t *testing.T) {
		_, err := NormalizeCart([]map[string]interface{}{
			{"name": "Espresso", "price": 3.0},
			{"price": 4.0},
		})
		assert.Error(t, err)
	})

	t.Run("AllLinesNormalized", func(t *testing.T) {
		items, err := NormalizeCart([]map[string]interface{}{
			{"name": "Espresso", "price": 3.0},
			{"item_name": "Croissant", "item_price": 4.0, "qty": float64(3)},
		})
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, 3, items[1].Quantity)
	})
}

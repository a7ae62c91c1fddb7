package services

import (
	"testing"

	"guesthub/dto"

	"github.com/stretchr/testify/assert"
)

func TestMergeFilters(t *testing.T) {
	t.Run("EmptyFieldsKeepOldValues", func(t *testing.T) {
		old := &dto.MenuSearchFilters{Query: "pizza", ServiceType: "restaurant", PriceMax: fptr(20)}
		next := &dto.MenuSearchFilters{Query: "pasta"}

		merged := MergeFilters(old, next)
		assert.Equal(t, "pasta", merged.Query)
		assert.Equal(t, "restaurant", merged.ServiceType)
		assert.Equal(t, 20.0, *merged.PriceMax)
	})

	t.Run("NewValuesWin", func(t *testing.T) {
		old := &dto.MenuSearchFilters{ServiceID: uptr(1)}
		next := &dto.MenuSearchFilters{ServiceID: uptr(2)}

		merged := MergeFilters(old, next)
		assert.Equal(t, uint(2), *merged.ServiceID)
	})

	t.Run("ContradictoryMinDropsOldMax", func(t *testing.T) {
		old := &dto.MenuSearchFilters{PriceMax: fptr(10)}
		next := &dto.MenuSearchFilters{PriceMin: fptr(15)}

		merged := MergeFilters(old, next)
		assert.Equal(t, 15.0, *merged.PriceMin)
		assert.Nil(t, merged.PriceMax)
	})

	t.Run("ContradictoryMaxDropsOldMin", func(t *testing.T) {
		old := &dto.MenuSearchFilters{PriceMin: fptr(30)}
		next := &dto.MenuSearchFilters{PriceMax: fptr(10)}

		merged := MergeFilters(old, next)
		assert.Equal(t, 10.0, *merged.PriceMax)
		assert.Nil(t, merged.PriceMin)
	})
}

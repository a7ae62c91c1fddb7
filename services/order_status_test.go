package services

import (
	"testing"

	"guesthub/constants"
	"guesthub/models"

	"github.com/stretchr/testify/assert"
)

func item(department, status string) models.OrderItem {
	return models.OrderItem{Department: department, Status: status}
}

func TestDeriveOrderStatus(t *testing.T) {
	t.Run("EmptyOrderIsPending", func(t *testing.T) {
		assert.Equal(t, "pending", DeriveOrderStatus(nil))
	})

	t.Run("AllDelivered", func(t *testing.T) {
		items := []models.OrderItem{
			item("kitchen", "delivered"),
			item("bar", "delivered"),
		}
		assert.Equal(t, "delivered", DeriveOrderStatus(items))
	})

	t.Run("ReadyAndDeliveredIsReady", func(t *testing.T) {
		items := []models.OrderItem{
			item("kitchen", "ready"),
			item("kitchen", "ready"),
			item("bar", "delivered"),
		}
		assert.Equal(t, "ready", DeriveOrderStatus(items))
	})

	t.Run("AnyPreparingWins", func(t *testing.T) {
		items := []models.OrderItem{
			item("kitchen", "preparing"),
			item("bar", "pending"),
		}
		assert.Equal(t, "preparing", DeriveOrderStatus(items))
	})

	t.Run("OnlyPendingStaysPending", func(t *testing.T) {
		items := []models.OrderItem{
			item("kitchen", "pending"),
			item("bar", "pending"),
		}
		assert.Equal(t, "pending", DeriveOrderStatus(items))
	})

	t.Run("CancelledItemsAreIgnored", func(t *testing.T) {
		items := []models.OrderItem{
			item("kitchen", "cancelled"),
			item("bar", "delivered"),
		}
		assert.Equal(t, "delivered", DeriveOrderStatus(items))
	})

	t.Run("AllCancelledIsCancelled", func(t *testing.T) {
		items := []models.OrderItem{
			item("kitchen", "cancelled"),
			item("bar", "cancelled"),
		}
		assert.Equal(t, "cancelled", DeriveOrderStatus(items))
	})

	t.Run("Idempotent", func(t *testing.T) {
		items := []models.OrderItem{
			item("kitchen", "ready"),
			item("bar", "delivered"),
		}
		first := DeriveOrderStatus(items)
		second := DeriveOrderStatus(items)
		assert.Equal(t, first, second)
	})
}

func TestDeriveDepartmentStatus(t *testing.T) {
	items := []models.OrderItem{
		item("kitchen", "preparing"),
		item("kitchen", "pending"),
		item("bar", "ready"),
	}

	assert.Equal(t, "preparing", DeriveDepartmentStatus(items, constants.DepartmentKitchen))
	assert.Equal(t, "ready", DeriveDepartmentStatus(items, constants.DepartmentBar))

	t.Run("NoItemsForDepartment", func(t *testing.T) {
		only := []models.OrderItem{item("kitchen", "ready")}
		assert.Equal(t, "pending", DeriveDepartmentStatus(only, constants.DepartmentBar))
	})
}

func TestCanSyncOrderStatus(t *testing.T) {
	assert.True(t, CanSyncOrderStatus("confirmed"))
	assert.True(t, CanSyncOrderStatus("ready"))
	assert.True(t, CanSyncOrderStatus("out_for_delivery"))
	assert.True(t, CanSyncOrderStatus("delivered"))
	assert.True(t, CanSyncOrderStatus("cancelled"))

	// The sync path must never regress a shared order
	assert.False(t, CanSyncOrderStatus("pending"))
	assert.False(t, CanSyncOrderStatus("preparing"))
}

func TestAdvanceItemStatus(t *testing.T) {
	t.Run("ForwardMove", func(t *testing.T) {
		it := item("kitchen", "pending")
		assert.NoError(t, AdvanceItemStatus(&it, "preparing"))
		assert.Equal(t, "preparing", it.Status)
	})

	t.Run("SkippingAheadIsAllowed", func(t *testing.T) {
		it := item("kitchen", "pending")
		assert.NoError(t, AdvanceItemStatus(&it, "delivered"))
	})

	t.Run("BackwardsIsRefused", func(t *testing.T) {
		it := item("kitchen", "ready")
		err := AdvanceItemStatus(&it, "preparing")
		assert.Error(t, err)
		assert.Equal(t, "ready", it.Status)
	})

	t.Run("CancelAlwaysAllowedWhileLive", func(t *testing.T) {
		it := item("bar", "ready")
		assert.NoError(t, AdvanceItemStatus(&it, "cancelled"))
		assert.Equal(t, "cancelled", it.Status)
	})

	t.Run("CancelledIsTerminal", func(t *testing.T) {
		it := item("bar", "cancelled")
		assert.Error(t, AdvanceItemStatus(&it, "preparing"))
		assert.Error(t, AdvanceItemStatus(&it, "cancelled"))
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		it := item("bar", "pending")
		assert.Error(t, AdvanceItemStatus(&it, "vanished"))
	})
}

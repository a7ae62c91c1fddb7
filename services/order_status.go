package services

import (
	"guesthub/constants"
	"guesthub/errors"
	"guesthub/models"

	"gorm.io/gorm"
)

// deriveStatus collapses a set of live item statuses into one order-level
// status. Applied identically to the whole order and per department.
func deriveStatus(statuses []string) string {
	if len(statuses) == 0 {
		return constants.ItemStatusPending
	}

	allDelivered := true
	readyOrDelivered := true
	hasPreparing := false
	for _, s := range statuses {
		if s != constants.ItemStatusDelivered {
			allDelivered = false
		}
		if s != constants.ItemStatusReady && s != constants.ItemStatusDelivered {
			readyOrDelivered = false
		}
		if s == constants.ItemStatusPreparing {
			hasPreparing = true
		}
	}

	switch {
	case allDelivered:
		return constants.ItemStatusDelivered
	case readyOrDelivered:
		return constants.ItemStatusReady
	case hasPreparing:
		return constants.ItemStatusPreparing
	default:
		return constants.ItemStatusPending
	}
}

// liveStatuses drops cancelled items from the scan. An order whose items are
// all cancelled is reported as cancelled, not pending.
func liveStatuses(items []models.OrderItem, department string) (statuses []string, sawItem bool) {
	for _, it := range items {
		if department != "" && it.Department != department {
			continue
		}
		sawItem = true
		if it.Status == constants.ItemStatusCancelled {
			continue
		}
		statuses = append(statuses, it.Status)
	}
	return statuses, sawItem
}

// DeriveOrderStatus computes the overall status from all items of an order
func DeriveOrderStatus(items []models.OrderItem) string {
	statuses, sawItem := liveStatuses(items, "")
	if sawItem && len(statuses) == 0 {
		return constants.ItemStatusCancelled
	}
	return deriveStatus(statuses)
}

// DeriveDepartmentStatus computes the status of one department's subset
func DeriveDepartmentStatus(items []models.OrderItem, department string) string {
	statuses, sawItem := liveStatuses(items, department)
	if sawItem && len(statuses) == 0 {
		return constants.ItemStatusCancelled
	}
	return deriveStatus(statuses)
}

// CanSyncOrderStatus reports whether the item-status-sync path may write a
// status to the order's own top-level field. Kitchen and bar advance items
// independently, so the sync must never regress a shared order to
// "preparing" or "pending".
func CanSyncOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusConfirmed,
		constants.OrderStatusReady,
		constants.OrderStatusOutForDelivery,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	}
	return false
}

// SyncOrderStatus re-derives an order's status from its items and persists
// it when the derived value is allowed through the sync path. Derivations
// the guard rejects leave the stored status untouched.
func SyncOrderStatus(db *gorm.DB, order *models.Order) error {
	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return err
	}

	derived := DeriveOrderStatus(items)
	if derived == order.Status {
		return nil
	}
	if !CanSyncOrderStatus(derived) {
		return nil
	}

	if err := db.Model(order).Update("status", derived).Error; err != nil {
		return err
	}
	order.Status = derived
	return nil
}

// AdvanceItemStatus validates a staff item-status change. Items only move
// forward within their department's workflow; cancelled is terminal.
func AdvanceItemStatus(item *models.OrderItem, next string) error {
	rank := map[string]int{
		constants.ItemStatusPending:   0,
		constants.ItemStatusPreparing: 1,
		constants.ItemStatusReady:     2,
		constants.ItemStatusDelivered: 3,
	}

	if item.Status == constants.ItemStatusCancelled {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "item already cancelled", nil)
	}
	if next == constants.ItemStatusCancelled {
		item.Status = next
		return nil
	}

	nextRank, ok := rank[next]
	if !ok {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "unknown item status: "+next, nil)
	}
	if nextRank < rank[item.Status] {
		return errors.NewAppError(errors.ErrCodeStatusRegression, "item status cannot move backwards", nil)
	}

	item.Status = next
	return nil
}

package commands

import (
	"guesthub/constants"
	"guesthub/models"

	"gorm.io/gorm"
)

// OrderCommand is the interface every order mutation implements
type OrderCommand interface {
	Execute() error
}

// CreateOrderCommand persists a new order with its items
type CreateOrderCommand struct {
	order *models.Order
	db    *gorm.DB
}

func NewCreateOrderCommand(order *models.Order, db *gorm.DB) *CreateOrderCommand {
	return &CreateOrderCommand{
		order: order,
		db:    db,
	}
}

func (c *CreateOrderCommand) Execute() error {
	return c.db.Create(c.order).Error
}

// UpdateOrderCommand saves changes on an existing order
type UpdateOrderCommand struct {
	order *models.Order
	db    *gorm.DB
}

func NewUpdateOrderCommand(order *models.Order, db *gorm.DB) *UpdateOrderCommand {
	return &UpdateOrderCommand{
		order: order,
		db:    db,
	}
}

func (c *UpdateOrderCommand) Execute() error {
	return c.db.Save(c.order).Error
}

// CancelOrderCommand cancels an order and all of its live items. Orders are
// never hard-deleted, the row stays for the folio.
type CancelOrderCommand struct {
	orderID uint
	db      *gorm.DB
}

func NewCancelOrderCommand(orderID uint, db *gorm.DB) *CancelOrderCommand {
	return &CancelOrderCommand{
		orderID: orderID,
		db:      db,
	}
}

func (c *CancelOrderCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("id = ?", c.orderID).
			Update("status", constants.OrderStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND status NOT IN ?", c.orderID,
				[]string{constants.ItemStatusDelivered, constants.ItemStatusCancelled}).
			Update("status", constants.ItemStatusCancelled).Error
	})
}

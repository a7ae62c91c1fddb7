package builders

import (
	"guesthub/models"
)

// OrderBuilder assembles an order step by step
type OrderBuilder struct {
	order *models.Order
}

// NewOrderBuilder creates a new OrderBuilder instance
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &models.Order{},
	}
}

// WithHotel sets the owning hotel
func (b *OrderBuilder) WithHotel(hotelID uint) *OrderBuilder {
	b.order.HotelID = hotelID
	return b
}

// WithRoom sets the delivery room
func (b *OrderBuilder) WithRoom(roomID uint) *OrderBuilder {
	b.order.RoomID = roomID
	return b
}

// WithBooking links the order to a stay
func (b *OrderBuilder) WithBooking(bookingID *uint) *OrderBuilder {
	b.order.BookingID = bookingID
	return b
}

// WithGuestInfo sets guest details
func (b *OrderBuilder) WithGuestInfo(guestName, guestEmail string) *OrderBuilder {
	b.order.GuestName = guestName
	b.order.GuestEmail = guestEmail
	return b
}

// WithOrderNumber sets the human-facing order number
func (b *OrderBuilder) WithOrderNumber(orderNumber string) *OrderBuilder {
	b.order.OrderNumber = orderNumber
	return b
}

// WithStatus sets the order status
func (b *OrderBuilder) WithStatus(status string) *OrderBuilder {
	b.order.Status = status
	return b
}

// WithItems sets the order lines
func (b *OrderBuilder) WithItems(items []models.OrderItem) *OrderBuilder {
	b.order.Items = items
	return b
}

// WithAmounts sets all monetary fields at once
func (b *OrderBuilder) WithAmounts(subtotal, discount, tax, tip, deliveryFee, total float64) *OrderBuilder {
	b.order.Subtotal = subtotal
	b.order.DiscountAmount = discount
	b.order.TaxAmount = tax
	b.order.TipAmount = tip
	b.order.DeliveryFee = deliveryFee
	b.order.TotalAmount = total
	return b
}

// WithPromotion records the promotion applied at checkout
func (b *OrderBuilder) WithPromotion(promotionID *uint) *OrderBuilder {
	b.order.PromotionID = promotionID
	return b
}

// WithNotes sets order-level notes
func (b *OrderBuilder) WithNotes(notes string) *OrderBuilder {
	b.order.Notes = notes
	return b
}

// Build returns the assembled order
func (b *OrderBuilder) Build() *models.Order {
	return b.order
}

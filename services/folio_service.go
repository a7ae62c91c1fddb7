package services

import (
	"time"

	"guesthub/constants"
	"guesthub/errors"
	"guesthub/models"

	"gorm.io/gorm"
)

// Folio is the aggregated bill view for one stay. It is never persisted:
// always recomputed from the booking, its orders and the optional manual
// adjustment.
type Folio struct {
	Booking       models.Booking          `json:"booking"`
	Orders        []models.Order          `json:"orders"`
	TotalAmount   float64                 `json:"totalAmount"`
	PaymentStatus string                  `json:"paymentStatus"`
	Adjustment    *models.FolioAdjustment `json:"adjustment,omitempty"`
}

// FolioFilters narrows a hotel-wide folio listing
type FolioFilters struct {
	PaymentStatus string
	RoomNumber    string
	GuestName     string
	Limit         int
}

// AggregatePaymentStatus is "paid" iff the order list is non-empty and every
// order is individually paid.
func AggregatePaymentStatus(orders []models.Order) string {
	if len(orders) == 0 {
		return constants.PaymentStatusPending
	}
	for _, o := range orders {
		if o.PaymentStatus != constants.PaymentStatusPaid {
			return constants.PaymentStatusPending
		}
	}
	return constants.PaymentStatusPaid
}

// BuildFolio assembles the derived view from already-fetched records
func BuildFolio(booking models.Booking, orders []models.Order, adjustment *models.FolioAdjustment) Folio {
	var total float64
	for _, o := range orders {
		total += o.TotalAmount
	}
	return Folio{
		Booking:       booking,
		Orders:        orders,
		TotalAmount:   RoundMoney(total),
		PaymentStatus: AggregatePaymentStatus(orders),
		Adjustment:    adjustment,
	}
}

// GetFolio computes the folio for one booking
func GetFolio(db *gorm.DB, bookingID uint) (*Folio, error) {
	var booking models.Booking
	if err := db.Preload("Room").
		Where("id = ? AND is_deleted = false", bookingID).
		First(&booking).Error; err != nil {
		return nil, errors.ErrBookingNotFound
	}

	var orders []models.Order
	if err := db.Preload("Items").
		Where("booking_id = ? AND is_deleted = false", bookingID).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	var adjustment models.FolioAdjustment
	var adjPtr *models.FolioAdjustment
	if err := db.Where("booking_id = ?", bookingID).First(&adjustment).Error; err == nil {
		adjPtr = &adjustment
	}

	folio := BuildFolio(booking, orders, adjPtr)
	return &folio, nil
}

// ListFolios computes folios for every completed stay of a hotel. Bookings
// with zero orders or a zero total never appear: a folio must represent a
// non-zero, order-backed bill.
func ListFolios(db *gorm.DB, hotelID uint, filters FolioFilters) ([]Folio, error) {
	tx := db.Preload("Room").
		Where("hotel_id = ? AND status = ? AND is_deleted = false", hotelID, constants.BookingStatusCheckedOut)

	if filters.RoomNumber != "" {
		tx = tx.Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Where("rooms.room_number = ?", filters.RoomNumber)
	}
	if filters.GuestName != "" {
		tx = tx.Where("guest_name ILIKE ?", "%"+filters.GuestName+"%")
	}

	var bookings []models.Booking
	if err := tx.Order("updated_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return []Folio{}, nil
	}

	bookingIDs := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		bookingIDs = append(bookingIDs, b.ID)
	}

	// Batch-load orders and adjustments for all candidate bookings at once
	var orders []models.Order
	if err := db.Preload("Items").
		Where("booking_id IN ? AND is_deleted = false", bookingIDs).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	ordersByBooking := make(map[uint][]models.Order)
	for _, o := range orders {
		if o.BookingID != nil {
			ordersByBooking[*o.BookingID] = append(ordersByBooking[*o.BookingID], o)
		}
	}

	var adjustments []models.FolioAdjustment
	if err := db.Where("booking_id IN ?", bookingIDs).Find(&adjustments).Error; err != nil {
		return nil, err
	}
	adjustmentByBooking := make(map[uint]*models.FolioAdjustment)
	for i := range adjustments {
		adjustmentByBooking[adjustments[i].BookingID] = &adjustments[i]
	}

	folios := make([]Folio, 0, len(bookings))
	for _, b := range bookings {
		bookingOrders := ordersByBooking[b.ID]
		folio := BuildFolio(b, bookingOrders, adjustmentByBooking[b.ID])
		if len(folio.Orders) == 0 || folio.TotalAmount == 0 {
			continue
		}
		if filters.PaymentStatus != "" && folio.PaymentStatus != filters.PaymentStatus {
			continue
		}
		folios = append(folios, folio)
		if filters.Limit > 0 && len(folios) >= filters.Limit {
			break
		}
	}

	return folios, nil
}

// MarkFolioPaid settles every order of a booking
func MarkFolioPaid(db *gorm.DB, bookingID uint) error {
	var booking models.Booking
	if err := db.Where("id = ? AND is_deleted = false", bookingID).First(&booking).Error; err != nil {
		return errors.ErrBookingNotFound
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("booking_id = ? AND is_deleted = false", bookingID).
			Update("payment_status", constants.PaymentStatusPaid).Error; err != nil {
			return err
		}
		return tx.Model(&booking).Update("payment_status", constants.PaymentStatusPaid).Error
	})
}

// UpsertAdjustment records or edits the POS reconciliation figures for a
// folio. Creating one means "mark this folio as paid with this final
// figure"; editing never touches the underlying order totals.
func UpsertAdjustment(db *gorm.DB, bookingID uint, adj *models.FolioAdjustment, actorID uint) (*models.FolioAdjustment, error) {
	if err := adj.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, err.Error(), nil)
	}

	var existing models.FolioAdjustment
	err := db.Where("booking_id = ?", bookingID).First(&existing).Error

	adj.BookingID = bookingID
	adj.AdjustedAt = time.Now()
	adj.AdjustedBy = actorID

	if err == nil {
		adj.ID = existing.ID
		adj.CreatedAt = existing.CreatedAt
		if err := db.Save(adj).Error; err != nil {
			return nil, err
		}
		return adj, nil
	}

	if err := db.Create(adj).Error; err != nil {
		return nil, err
	}
	if err := MarkFolioPaid(db, bookingID); err != nil {
		return nil, err
	}
	return adj, nil
}

package services

import (
	"time"

	"guesthub/constants"
	"guesthub/errors"
	"guesthub/models"
	"guesthub/services/logger"

	"gorm.io/gorm"
)

// AnonymizedGuestName replaces a guest's display name after a completed
// deletion request. The booking and its orders stay intact so folios keep
// aggregating; only the identity fields change.
const AnonymizedGuestName = "Guest (removed)"

type DataRequestService struct {
	db     *gorm.DB
	logger logger.Logger
}

type DataRequestServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewDataRequestService(opts DataRequestServiceOptions) *DataRequestService {
	return &DataRequestService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CanProceedWithDeletion is the gating rule: a deletion request against a
// guest with an active booking is blocked unless the operator explicitly
// forces it. The returned error carries the "has_active_booking" signal.
func CanProceedWithDeletion(requestType string, hasActiveBooking, force bool) error {
	if requestType != constants.DataRequestTypeDeletion {
		return nil
	}
	if hasActiveBooking && !force {
		return errors.NewAppError(errors.ErrCodeHasActiveBooking, errors.ErrHasActiveBooking.Error(), nil)
	}
	return nil
}

// HasActiveBooking reports whether the guest still has a checked-in stay
func (s *DataRequestService) HasActiveBooking(hotelID uint, guestEmail string) (bool, error) {
	if guestEmail == "" {
		return false, nil
	}
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("hotel_id = ? AND guest_email = ? AND status = ? AND is_deleted = false",
			hotelID, guestEmail, constants.BookingStatusCheckedIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Process transitions a data request. Completing a deletion anonymizes the
// guest's display identity across their bookings and orders.
func (s *DataRequestService) Process(req *models.DataRequest, status string, force bool, actorID uint) error {
	if status == constants.DataRequestStatusCompleted && req.RequestType == constants.DataRequestTypeDeletion {
		hasActive, err := s.HasActiveBooking(req.HotelID, req.GuestEmail)
		if err != nil {
			return err
		}
		if err := CanProceedWithDeletion(req.RequestType, hasActive, force); err != nil {
			return err
		}
		if err := s.anonymizeGuest(req.HotelID, req.GuestEmail); err != nil {
			return err
		}
		s.logger.Info("anonymized guest data for request %d (forced=%v)", req.ID, force)
	}

	now := time.Now()
	req.Status = status
	req.ProcessedBy = &actorID
	req.ProcessedAt = &now
	return s.db.Save(req).Error
}

func (s *DataRequestService) anonymizeGuest(hotelID uint, guestEmail string) error {
	if guestEmail == "" {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var bookings []models.Booking
		if err := tx.Where("hotel_id = ? AND guest_email = ?", hotelID, guestEmail).
			Find(&bookings).Error; err != nil {
			return err
		}

		for _, b := range bookings {
			if err := tx.Model(&models.Order{}).
				Where("booking_id = ?", b.ID).
				Update("guest_name", AnonymizedGuestName).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Booking{}).
			Where("hotel_id = ? AND guest_email = ?", hotelID, guestEmail).
			Updates(map[string]interface{}{
				"guest_name":  AnonymizedGuestName,
				"guest_email": "",
				"guest_phone": "",
			}).Error
	})
}

package models

import (
	"errors"

	"guesthub/constants"
)

// BookingState defines the allowed transitions per lifecycle status
type BookingState interface {
	CheckIn(booking *Booking) error
	CheckOut(booking *Booking) error
}

// ConfirmedState: reservation exists, guest not yet in the room
type ConfirmedState struct{}

func (s *ConfirmedState) CheckIn(booking *Booking) error {
	booking.Status = constants.BookingStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out a booking that was never checked in")
}

// CheckedInState: guest is in the room
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(booking *Booking) error {
	return errors.New("booking already checked in")
}

func (s *CheckedInState) CheckOut(booking *Booking) error {
	booking.Status = constants.BookingStatusCheckedOut
	return nil
}

// CheckedOutState: stay is complete, booking is folio material only
type CheckedOutState struct{}

func (s *CheckedOutState) CheckIn(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutState) CheckOut(booking *Booking) error {
	return errors.New("booking already checked out")
}

// GetBookingState returns the state handler for a lifecycle status
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCheckedIn:
		return &CheckedInState{}
	case constants.BookingStatusCheckedOut:
		return &CheckedOutState{}
	default:
		return &ConfirmedState{}
	}
}

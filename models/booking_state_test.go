package models

import (
	"testing"

	"guesthub/constants"

	"github.com/stretchr/testify/assert"
)

func TestBookingLifecycle(t *testing.T) {
	t.Run("ConfirmedCanCheckIn", func(t *testing.T) {
		b := Booking{Status: constants.BookingStatusConfirmed}
		err := GetBookingState(b.Status).CheckIn(&b)
		assert.NoError(t, err)
		assert.Equal(t, constants.BookingStatusCheckedIn, b.Status)
	})

	t.Run("ConfirmedCannotCheckOut", func(t *testing.T) {
		b := Booking{Status: constants.BookingStatusConfirmed}
		assert.Error(t, GetBookingState(b.Status).CheckOut(&b))
	})

	t.Run("CheckedInCanCheckOut", func(t *testing.T) {
		b := Booking{Status: constants.BookingStatusCheckedIn}
		err := GetBookingState(b.Status).CheckOut(&b)
		assert.NoError(t, err)
		assert.Equal(t, constants.BookingStatusCheckedOut, b.Status)
	})

	t.Run("CheckedInCannotCheckInAgain", func(t *testing.T) {
		b := Booking{Status: constants.BookingStatusCheckedIn}
		assert.Error(t, GetBookingState(b.Status).CheckIn(&b))
	})

	t.Run("CheckedOutIsTerminal", func(t *testing.T) {
		b := Booking{Status: constants.BookingStatusCheckedOut}
		assert.Error(t, GetBookingState(b.Status).CheckIn(&b))
		assert.Error(t, GetBookingState(b.Status).CheckOut(&b))
	})
}

package services

import (
	"testing"

	"guesthub/constants"
	"guesthub/errors"

	"github.com/stretchr/testify/assert"
)

func TestCanProceedWithDeletion(t *testing.T) {
	t.Run("ExportNeverBlocked", func(t *testing.T) {
		assert.NoError(t, CanProceedWithDeletion(constants.DataRequestTypeExport, true, false))
	})

	t.Run("DeletionWithoutActiveBooking", func(t *testing.T) {
		assert.NoError(t, CanProceedWithDeletion(constants.DataRequestTypeDeletion, false, false))
	})

	t.Run("DeletionBlockedByActiveBooking", func(t *testing.T) {
		err := CanProceedWithDeletion(constants.DataRequestTypeDeletion, true, false)
		assert.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.ErrCodeHasActiveBooking, appErr.Code)
		assert.Equal(t, "has_active_booking", appErr.Message)
	})

	t.Run("ForceOverridesTheGate", func(t *testing.T) {
		assert.NoError(t, CanProceedWithDeletion(constants.DataRequestTypeDeletion, true, true))
	})
}

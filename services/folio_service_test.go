package services

import (
	"testing"

	"guesthub/constants"
	"guesthub/models"

	"github.com/stretchr/testify/assert"
)

func TestAggregatePaymentStatus(t *testing.T) {
	t.Run("EmptyIsPending", func(t *testing.T) {
		assert.Equal(t, constants.PaymentStatusPending, AggregatePaymentStatus(nil))
	})

	t.Run("AllPaid", func(t *testing.T) {
		orders := []models.Order{
			{PaymentStatus: constants.PaymentStatusPaid},
			{PaymentStatus: constants.PaymentStatusPaid},
		}
		assert.Equal(t, constants.PaymentStatusPaid, AggregatePaymentStatus(orders))
	})

	t.Run("OnePendingDragsTheFolio", func(t *testing.T) {
		orders := []models.Order{
			{PaymentStatus: constants.PaymentStatusPaid},
			{PaymentStatus: constants.PaymentStatusPending},
		}
		assert.Equal(t, constants.PaymentStatusPending, AggregatePaymentStatus(orders))
	})
}

func TestBuildFolio(t *testing.T) {
	booking := models.Booking{ID: 11, GuestName: "Ada"}

	t.Run("TotalsAndPending", func(t *testing.T) {
		// A 40.00 paid order plus a 15.00 pending order: 55.00, pending
		orders := []models.Order{
			{TotalAmount: 40, PaymentStatus: constants.PaymentStatusPaid},
			{TotalAmount: 15, PaymentStatus: constants.PaymentStatusPending},
		}
		folio := BuildFolio(booking, orders, nil)
		assert.Equal(t, 55.0, folio.TotalAmount)
		assert.Equal(t, constants.PaymentStatusPending, folio.PaymentStatus)
		assert.Len(t, folio.Orders, 2)
		assert.Nil(t, folio.Adjustment)
	})

	t.Run("NoOrders", func(t *testing.T) {
		folio := BuildFolio(booking, nil, nil)
		assert.Equal(t, 0.0, folio.TotalAmount)
		assert.Equal(t, constants.PaymentStatusPending, folio.PaymentStatus)
	})

	t.Run("AdjustmentIsCarriedNotComputed", func(t *testing.T) {
		orders := []models.Order{
			{TotalAmount: 40, PaymentStatus: constants.PaymentStatusPaid},
		}
		adj := &models.FolioAdjustment{FinalAmount: 43.6, TaxAmount: 3.6}
		folio := BuildFolio(booking, orders, adj)
		// The derived total stays the order sum; the adjustment rides along
		assert.Equal(t, 40.0, folio.TotalAmount)
		assert.Equal(t, 43.6, folio.Adjustment.FinalAmount)
	})

	t.Run("TotalsAreRounded", func(t *testing.T) {
		orders := []models.Order{
			{TotalAmount: 10.111, PaymentStatus: constants.PaymentStatusPaid},
			{TotalAmount: 10.112, PaymentStatus: constants.PaymentStatusPaid},
		}
		folio := BuildFolio(booking, orders, nil)
		assert.Equal(t, 20.22, folio.TotalAmount)
	})
}

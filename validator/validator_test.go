package validator

import (
	"testing"

	"guesthub/models"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func uptr(v uint) *uint       { return &v }

func validPromotion() models.Promotion {
	return models.Promotion{
		Name:          "Happy Hour",
		DiscountType:  "percentage",
		DiscountValue: 20,
		StartDate:     sptr("2026-03-01"),
		EndDate:       sptr("2026-03-31"),
		StartTime:     sptr("17:00:00"),
		EndTime:       sptr("19:00:00"),
		DaysOfWeek:    []string{"friday", "saturday"},
	}
}

func TestValidatePromotion(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p := validPromotion()
		assert.NoError(t, ValidatePromotion(&p))
	})

	t.Run("MissingName", func(t *testing.T) {
		p := validPromotion()
		p.Name = ""
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("UnknownDiscountType", func(t *testing.T) {
		p := validPromotion()
		p.DiscountType = "bogo"
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("PercentageOverHundred", func(t *testing.T) {
		p := validPromotion()
		p.DiscountValue = 120
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("BadDateFormat", func(t *testing.T) {
		p := validPromotion()
		p.StartDate = sptr("01/03/2026")
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		p := validPromotion()
		p.StartDate = sptr("2026-03-31")
		p.EndDate = sptr("2026-03-01")
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("BadTimeFormat", func(t *testing.T) {
		p := validPromotion()
		p.StartTime = sptr("5pm")
		assert.Error(t, ValidatePromotion(&p))

		p = validPromotion()
		p.EndTime = sptr("25:00:00")
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("UnknownWeekday", func(t *testing.T) {
		p := validPromotion()
		p.DaysOfWeek = []string{"caturday"}
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("UnknownServiceType", func(t *testing.T) {
		p := validPromotion()
		p.EligibleServiceTypes = []string{"casino"}
		assert.Error(t, ValidatePromotion(&p))
	})

	t.Run("NegativeMinOrder", func(t *testing.T) {
		p := validPromotion()
		p.MinOrderAmount = fptr(-1)
		assert.Error(t, ValidatePromotion(&p))
	})
}

func TestValidateOverride(t *testing.T) {
	t.Run("ProductTarget", func(t *testing.T) {
		o := models.PromotionItemOverride{ProductID: uptr(1), DiscountType: "percentage", DiscountValue: 50}
		assert.NoError(t, ValidateOverride(&o))
	})

	t.Run("ItemNameTarget", func(t *testing.T) {
		o := models.PromotionItemOverride{MenuItemName: "mojito", DiscountType: "free_item"}
		assert.NoError(t, ValidateOverride(&o))
	})

	t.Run("NoTarget", func(t *testing.T) {
		o := models.PromotionItemOverride{DiscountType: "percentage", DiscountValue: 10}
		assert.Error(t, ValidateOverride(&o))
	})

	t.Run("BothTargets", func(t *testing.T) {
		o := models.PromotionItemOverride{ProductID: uptr(1), MenuItemName: "mojito", DiscountType: "percentage"}
		assert.Error(t, ValidateOverride(&o))
	})
}

func TestValidateBooking(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		b := models.Booking{GuestName: "Ada Lovelace", GuestEmail: "ada@example.com", GuestPhone: "+34600111222"}
		assert.NoError(t, ValidateBooking(&b))
	})

	t.Run("EmailAndPhoneOptional", func(t *testing.T) {
		b := models.Booking{GuestName: "Walk In"}
		assert.NoError(t, ValidateBooking(&b))
	})

	t.Run("MissingName", func(t *testing.T) {
		b := models.Booking{GuestEmail: "ada@example.com"}
		assert.Error(t, ValidateBooking(&b))
	})

	t.Run("BadEmail", func(t *testing.T) {
		b := models.Booking{GuestName: "Ada", GuestEmail: "not-an-email"}
		assert.Error(t, ValidateBooking(&b))
	})

	t.Run("BadPhone", func(t *testing.T) {
		b := models.Booking{GuestName: "Ada", GuestPhone: "call me"}
		assert.Error(t, ValidateBooking(&b))
	})
}

func TestValidateTicket(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tk := models.ServiceRequest{Title: "More towels", Category: "housekeeping"}
		assert.NoError(t, ValidateTicket(&tk))
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		tk := models.ServiceRequest{Title: "More towels", Category: "laundry"}
		assert.Error(t, ValidateTicket(&tk))
	})

	t.Run("UnknownPriority", func(t *testing.T) {
		tk := models.ServiceRequest{Title: "More towels", Category: "housekeeping", Priority: "asap"}
		assert.Error(t, ValidateTicket(&tk))
	})
}

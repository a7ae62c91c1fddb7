package services

import (
	"testing"
	"time"

	"guesthub/models"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func uptr(v uint) *uint       { return &v }

func TestNormalizeItemName(t *testing.T) {
	assert.Equal(t, "cafe con leche", NormalizeItemName("  Café  con  Leche "))
	assert.Equal(t, "creme brulee", NormalizeItemName("Crème Brûlée"))
	assert.Equal(t, "", NormalizeItemName("   "))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 5.0, RoundMoney(5.0))
	assert.Equal(t, 2.34, RoundMoney(2.344))
	assert.Equal(t, 2.35, RoundMoney(2.346))
	assert.Equal(t, 10.0, RoundMoney(9.996))
}

func TestComputeDiscount(t *testing.T) {
	t.Run("PercentageWithCap", func(t *testing.T) {
		// 20% of 30.00 is 6.00, capped at 5.00
		got := ComputeDiscount("percentage", 20, fptr(5), 30)
		assert.Equal(t, 5.0, got)
	})

	t.Run("PercentageWithoutCap", func(t *testing.T) {
		got := ComputeDiscount("percentage", 20, nil, 30)
		assert.Equal(t, 6.0, got)
	})

	t.Run("FixedAmountNeverExceedsPrice", func(t *testing.T) {
		// A 10.00 fixed discount on a 7.00 item discounts 7.00
		got := ComputeDiscount("fixed_amount", 10, nil, 7)
		assert.Equal(t, 7.0, got)
	})

	t.Run("FreeItem", func(t *testing.T) {
		got := ComputeDiscount("free_item", 0, nil, 12.5)
		assert.Equal(t, 12.5, got)
	})

	t.Run("UnknownTypeGivesZero", func(t *testing.T) {
		got := ComputeDiscount("mystery", 50, nil, 30)
		assert.Equal(t, 0.0, got)
	})

	t.Run("RoundsToCents", func(t *testing.T) {
		// 15% of 9.99 = 1.4985 -> 1.50
		got := ComputeDiscount("percentage", 15, nil, 9.99)
		assert.Equal(t, 1.5, got)
	})
}

func TestPromotionValidAt(t *testing.T) {
	// Wednesday 2026-03-04 18:30 local
	now := time.Date(2026, 3, 4, 18, 30, 0, 0, time.UTC)

	t.Run("ShowAlwaysShortCircuits", func(t *testing.T) {
		p := models.Promotion{
			ShowAlways: true,
			StartDate:  sptr("2030-01-01"),
			DaysOfWeek: []string{"monday"},
		}
		assert.True(t, PromotionValidAt(p, now))
	})

	t.Run("DateWindow", func(t *testing.T) {
		p := models.Promotion{StartDate: sptr("2026-03-01"), EndDate: sptr("2026-03-31")}
		assert.True(t, PromotionValidAt(p, now))

		p.EndDate = sptr("2026-03-03")
		assert.False(t, PromotionValidAt(p, now))

		p = models.Promotion{StartDate: sptr("2026-03-05")}
		assert.False(t, PromotionValidAt(p, now))
	})

	t.Run("EndDateInclusive", func(t *testing.T) {
		p := models.Promotion{EndDate: sptr("2026-03-04")}
		assert.True(t, PromotionValidAt(p, now))
	})

	t.Run("DaysOfWeek", func(t *testing.T) {
		p := models.Promotion{DaysOfWeek: []string{"wednesday", "friday"}}
		assert.True(t, PromotionValidAt(p, now))

		p.DaysOfWeek = []string{"monday"}
		assert.False(t, PromotionValidAt(p, now))
	})

	t.Run("DailyTimeWindow", func(t *testing.T) {
		p := models.Promotion{StartTime: sptr("17:00:00"), EndTime: sptr("19:00:00")}
		assert.True(t, PromotionValidAt(p, now))

		p = models.Promotion{StartTime: sptr("19:00:00"), EndTime: sptr("21:00:00")}
		assert.False(t, PromotionValidAt(p, now))
	})

	t.Run("TimeWindowBoundsInclusive", func(t *testing.T) {
		p := models.Promotion{StartTime: sptr("18:30:00"), EndTime: sptr("18:30:00")}
		assert.True(t, PromotionValidAt(p, now))
	})

	t.Run("NoWindowMeansAlwaysOn", func(t *testing.T) {
		assert.True(t, PromotionValidAt(models.Promotion{}, now))
	})
}

func TestServiceTypeEligible(t *testing.T) {
	p := models.Promotion{EligibleServiceTypes: []string{"restaurant", "bar"}}
	assert.True(t, ServiceTypeEligible(p, "restaurant"))
	assert.False(t, ServiceTypeEligible(p, "spa"))
	assert.False(t, ServiceTypeEligible(p, ""))

	all := models.Promotion{AppliesToAllProducts: true}
	assert.True(t, ServiceTypeEligible(all, "spa"))
}

func TestResolveFromPromotions(t *testing.T) {
	now := time.Date(2026, 3, 4, 18, 30, 0, 0, time.UTC)

	happyHour := models.Promotion{
		ID:                   1,
		Name:                 "Happy Hour",
		DiscountType:         "percentage",
		DiscountValue:        20,
		MaxDiscountAmount:    fptr(5),
		EligibleServiceTypes: []string{"bar"},
	}
	spaDeal := models.Promotion{
		ID:                   2,
		Name:                 "Spa Week",
		DiscountType:         "fixed_amount",
		DiscountValue:        10,
		EligibleServiceTypes: []string{"spa"},
		Overrides: []models.PromotionItemOverride{
			{ServiceID: uptr(7), MenuItemName: "hot stone massage", DiscountType: "percentage", DiscountValue: 50},
		},
	}

	// Newest first, the shape LoadActivePromotions returns
	promotions := []models.Promotion{happyHour, spaDeal}

	t.Run("ScenarioPercentageCap", func(t *testing.T) {
		// 20% on a 30.00 cocktail, capped at 5.00
		got := ResolveFromPromotions(promotions, DiscountInput{
			ServiceType: "bar",
			Price:       30,
		}, now)
		assert.NotNil(t, got)
		assert.Equal(t, 5.0, got.DiscountAmount)
		assert.Equal(t, uint(1), got.PromotionID)
	})

	t.Run("ScenarioFixedExceedsPrice", func(t *testing.T) {
		// 10.00 fixed on a 7.00 item discounts only 7.00
		got := ResolveFromPromotions(promotions, DiscountInput{
			ServiceType: "spa",
			Price:       7,
		}, now)
		assert.NotNil(t, got)
		assert.Equal(t, 7.0, got.DiscountAmount)
		assert.Equal(t, uint(2), got.PromotionID)
	})

	t.Run("ItemOverrideBypassesServiceType", func(t *testing.T) {
		// The named item belongs to the spa promotion even though the cart
		// line claims service type "bar"
		got := ResolveFromPromotions(promotions, DiscountInput{
			ServiceType:  "bar",
			ServiceID:    uptr(7),
			MenuItemName: "Hot  Stone   Massage",
			Price:        80,
		}, now)
		assert.NotNil(t, got)
		assert.Equal(t, uint(2), got.PromotionID)
		assert.Equal(t, 40.0, got.DiscountAmount)
	})

	t.Run("ProductOverrideOnSelectedPromotion", func(t *testing.T) {
		promo := happyHour
		promo.Overrides = []models.PromotionItemOverride{
			{ProductID: uptr(42), DiscountType: "free_item", DiscountValue: 0},
		}
		got := ResolveFromPromotions([]models.Promotion{promo}, DiscountInput{
			ServiceType: "bar",
			ProductID:   uptr(42),
			Price:       12,
		}, now)
		assert.NotNil(t, got)
		assert.Equal(t, 12.0, got.DiscountAmount)
		assert.Equal(t, "free_item", got.DiscountType)
	})

	t.Run("NoEligiblePromotion", func(t *testing.T) {
		got := ResolveFromPromotions(promotions, DiscountInput{
			ServiceType: "restaurant",
			Price:       20,
		}, now)
		assert.Nil(t, got)
	})

	t.Run("RecencyWinsBetweenEligible", func(t *testing.T) {
		older := models.Promotion{
			ID: 3, DiscountType: "percentage", DiscountValue: 50,
			EligibleServiceTypes: []string{"bar"},
		}
		got := ResolveFromPromotions([]models.Promotion{happyHour, older}, DiscountInput{
			ServiceType: "bar",
			Price:       10,
		}, now)
		assert.NotNil(t, got)
		// happyHour is listed first (newest) and wins despite the better deal
		assert.Equal(t, uint(1), got.PromotionID)
		assert.Equal(t, 2.0, got.DiscountAmount)
	})

	t.Run("ExpiredPromotionIgnored", func(t *testing.T) {
		expired := happyHour
		expired.EndDate = sptr("2026-03-01")
		got := ResolveFromPromotions([]models.Promotion{expired}, DiscountInput{
			ServiceType: "bar",
			Price:       30,
		}, now)
		assert.Nil(t, got)
	})
}

func TestCheckPromotionMinimumOrder(t *testing.T) {
	assert.True(t, CheckPromotionMinimumOrder(nil, 5))
	assert.True(t, CheckPromotionMinimumOrder(&models.Promotion{}, 5))

	p := &models.Promotion{MinOrderAmount: fptr(25)}
	assert.False(t, CheckPromotionMinimumOrder(p, 24.99))
	assert.True(t, CheckPromotionMinimumOrder(p, 25))
}

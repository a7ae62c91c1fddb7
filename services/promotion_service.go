package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"guesthub/models"
	"guesthub/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// DiscountInput identifies one cart item for discount resolution
type DiscountInput struct {
	ServiceType  string
	ServiceID    *uint
	ProductID    *uint
	MenuItemName string
	Price        float64
}

// ResolvedDiscount is the outcome of discount resolution for one item
type ResolvedDiscount struct {
	DiscountAmount float64 `json:"discountAmount"`
	PromotionID    uint    `json:"promotionId"`
	DiscountType   string  `json:"discountType"`
}

// NormalizeItemName folds diacritics, lowercases and collapses whitespace so
// menu item names compare the same regardless of call site spelling.
func NormalizeItemName(name string) string {
	folded := unidecode.Unidecode(name)
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), " ")
}

// RoundMoney rounds to 2 decimal places, half away from zero
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeDiscount applies one discount spec to an item price. The result is
// capped at maxAmount when set and never exceeds the item price, so the
// final price cannot go negative.
func ComputeDiscount(discountType string, value float64, maxAmount *float64, price float64) float64 {
	var d float64
	switch discountType {
	case "percentage":
		d = price * value / 100
		if maxAmount != nil && d > *maxAmount {
			d = *maxAmount
		}
	case "fixed_amount":
		d = value
	case "free_item":
		d = price
	default:
		return 0
	}
	if d > price {
		d = price
	}
	if d < 0 {
		d = 0
	}
	return RoundMoney(d)
}

// PromotionValidAt evaluates a promotion's activity window at a moment in
// the hotel's local time. ShowAlways short-circuits everything else.
func PromotionValidAt(p models.Promotion, now time.Time) bool {
	if p.ShowAlways {
		return true
	}

	dateStr := now.Format("2006-01-02")
	if p.StartDate != nil && *p.StartDate != "" && dateStr < *p.StartDate {
		return false
	}
	if p.EndDate != nil && *p.EndDate != "" && dateStr > *p.EndDate {
		return false
	}

	if len(p.DaysOfWeek) > 0 {
		day := strings.ToLower(now.Weekday().String())
		found := false
		for _, d := range p.DaysOfWeek {
			if strings.EqualFold(strings.TrimSpace(d), day) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Inclusive bounds, compared as HH:MM:SS strings
	if p.StartTime != nil && p.EndTime != nil && *p.StartTime != "" && *p.EndTime != "" {
		timeStr := now.Format("15:04:05")
		if timeStr < *p.StartTime || timeStr > *p.EndTime {
			return false
		}
	}

	return true
}

// ServiceTypeEligible reports whether a promotion's general discount can
// apply to an item of the given service type.
func ServiceTypeEligible(p models.Promotion, serviceType string) bool {
	if p.AppliesToAllProducts {
		return true
	}
	if serviceType == "" {
		return false
	}
	for _, t := range p.EligibleServiceTypes {
		if strings.EqualFold(strings.TrimSpace(t), serviceType) {
			return true
		}
	}
	return false
}

// ResolveFromPromotions resolves the discount for one item against a set of
// promotions ordered newest-created-first with overrides loaded.
//
// Item-level overrides are scanned across ALL window-valid promotions first,
// not just the one that would match by service type: an item-specific deal
// intentionally bypasses its parent promotion's service-type restrictions.
// Only after that does the single newest window-valid, type-eligible
// promotion contribute a product-id override or its general discount.
func ResolveFromPromotions(promotions []models.Promotion, in DiscountInput, now time.Time) *ResolvedDiscount {
	if in.ServiceID != nil && in.MenuItemName != "" {
		wanted := NormalizeItemName(in.MenuItemName)
		for _, p := range promotions {
			if !PromotionValidAt(p, now) {
				continue
			}
			for _, o := range p.Overrides {
				if o.ServiceID != nil && *o.ServiceID == *in.ServiceID && o.MenuItemName == wanted {
					return &ResolvedDiscount{
						DiscountAmount: ComputeDiscount(o.DiscountType, o.DiscountValue, o.MaxDiscountAmount, in.Price),
						PromotionID:    p.ID,
						DiscountType:   o.DiscountType,
					}
				}
			}
		}
	}

	selected := SelectActivePromotion(promotions, in.ServiceType, now)
	if selected == nil {
		return nil
	}

	if in.ProductID != nil {
		for _, o := range selected.Overrides {
			if o.ProductID != nil && *o.ProductID == *in.ProductID {
				return &ResolvedDiscount{
					DiscountAmount: ComputeDiscount(o.DiscountType, o.DiscountValue, o.MaxDiscountAmount, in.Price),
					PromotionID:    selected.ID,
					DiscountType:   o.DiscountType,
				}
			}
		}
	}

	return &ResolvedDiscount{
		DiscountAmount: ComputeDiscount(selected.DiscountType, selected.DiscountValue, selected.MaxDiscountAmount, in.Price),
		PromotionID:    selected.ID,
		DiscountType:   selected.DiscountType,
	}
}

// SelectActivePromotion picks the single promotion whose general discount
// applies for a service type: first by recency, not best-for-guest.
func SelectActivePromotion(promotions []models.Promotion, serviceType string, now time.Time) *models.Promotion {
	for i := range promotions {
		if !PromotionValidAt(promotions[i], now) {
			continue
		}
		if ServiceTypeEligible(promotions[i], serviceType) {
			return &promotions[i]
		}
	}
	return nil
}

// CheckPromotionMinimumOrder reports whether a cart subtotal satisfies the
// promotion's minimum order amount. Callers gate per-item discounts on this;
// the resolver itself does not enforce it.
func CheckPromotionMinimumOrder(p *models.Promotion, subtotal float64) bool {
	if p == nil || p.MinOrderAmount == nil {
		return true
	}
	return subtotal >= *p.MinOrderAmount
}

// LoadActivePromotions fetches a hotel's live promotions newest-first with
// overrides, the shape ResolveFromPromotions expects.
func LoadActivePromotions(db *gorm.DB, hotelID uint) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := db.Preload("Overrides").
		Where("hotel_id = ? AND is_active = true AND is_deleted = false", hotelID).
		Order("created_at desc").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

// ResolveDiscount is the DB-backed entry point: loads the hotel's active
// promotions, evaluates them at the hotel's local time and resolves the
// discount for one item.
func ResolveDiscount(db *gorm.DB, hotelID uint, in DiscountInput) (*ResolvedDiscount, error) {
	var hotel models.Hotel
	if err := db.First(&hotel, hotelID).Error; err != nil {
		return nil, err
	}

	promotions, err := LoadActivePromotions(db, hotelID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(hotel.Location())
	return ResolveFromPromotions(promotions, in, now), nil
}

// PromotionService carries the scheduled maintenance of promotions
type PromotionService struct {
	db     *gorm.DB
	logger logger.Logger
}

type PromotionServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPromotionService(opts PromotionServiceOptions) *PromotionService {
	return &PromotionService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// SweepExpired deactivates promotions whose end date has passed in their
// hotel's timezone and notifies connected admin displays.
func (s *PromotionService) SweepExpired(m *melody.Melody) error {
	var hotels []models.Hotel
	if err := s.db.Find(&hotels).Error; err != nil {
		return err
	}

	var total int64
	for _, hotel := range hotels {
		today := time.Now().In(hotel.Location()).Format("2006-01-02")
		res := s.db.Model(&models.Promotion{}).
			Where("hotel_id = ? AND is_active = true AND is_deleted = false AND show_always = false", hotel.ID).
			Where("end_date IS NOT NULL AND end_date < ?", today).
			Update("is_active", false)
		if res.Error != nil {
			s.logger.Error("promotion sweep failed for hotel %d: %v", hotel.ID, res.Error)
			return res.Error
		}
		total += res.RowsAffected
	}

	s.logger.Info("promotion sweep deactivated %d promotions", total)
	if m != nil && total > 0 {
		m.Broadcast([]byte(fmt.Sprintf(`{"type":"promotions_expired","count":%d}`, total)))
	}
	return nil
}

package validator

import (
	"guesthub/constants"
	"guesthub/errors"
	"guesthub/models"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs binding-tag validation on any request struct
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid request payload", err)
	}
	return nil
}

// ValidatePromotion checks a promotion before it is persisted
func ValidatePromotion(p *models.Promotion) error {
	if p.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Promotion name must not be empty", nil)
	}

	if err := p.ValidateDiscountType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Unknown discount type: "+p.DiscountType, err)
	}

	if p.DiscountValue < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Discount value must not be negative", nil)
	}

	if p.DiscountType == constants.DiscountTypePercentage && p.DiscountValue > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Percentage discount must not exceed 100", nil)
	}

	if p.MaxDiscountAmount != nil && *p.MaxDiscountAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Maximum discount amount must not be negative", nil)
	}

	if p.MinOrderAmount != nil && *p.MinOrderAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Minimum order amount must not be negative", nil)
	}

	startDate, err := parseOptionalDate(p.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid start date, expected YYYY-MM-DD", err)
	}

	endDate, err := parseOptionalDate(p.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid end date, expected YYYY-MM-DD", err)
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "End date must not be before start date", nil)
	}

	if p.StartTime != nil && !isValidTimeOfDay(*p.StartTime) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid start time, expected HH:MM:SS", nil)
	}

	if p.EndTime != nil && !isValidTimeOfDay(*p.EndTime) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid end time, expected HH:MM:SS", nil)
	}

	for _, day := range p.DaysOfWeek {
		if !isValidWeekday(day) {
			return errors.NewAppError(errors.ErrCodeValidation, "Unknown weekday: "+day, nil)
		}
	}

	for _, st := range p.EligibleServiceTypes {
		if !isValidServiceType(st) {
			return errors.NewAppError(errors.ErrCodeValidation, "Unknown service type: "+st, nil)
		}
	}

	return nil
}

// ValidateOverride checks a promotion item override. Exactly one target,
// product id or item name, must be set.
func ValidateOverride(o *models.PromotionItemOverride) error {
	if o.ProductID == nil && o.MenuItemName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Override needs a product id or an item name", nil)
	}

	if o.ProductID != nil && o.MenuItemName != "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Override must target a product id or an item name, not both", nil)
	}

	if o.DiscountType != constants.DiscountTypePercentage &&
		o.DiscountType != constants.DiscountTypeFixedAmount &&
		o.DiscountType != constants.DiscountTypeFreeItem {
		return errors.NewAppError(errors.ErrCodeValidation, "Unknown discount type: "+o.DiscountType, nil)
	}

	if o.DiscountValue < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Discount value must not be negative", nil)
	}

	if o.DiscountType == constants.DiscountTypePercentage && o.DiscountValue > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Percentage discount must not exceed 100", nil)
	}

	return nil
}

// ValidateAdjustment checks a manual folio adjustment
func ValidateAdjustment(a *models.FolioAdjustment) error {
	if err := a.Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Adjustment amounts must not be negative", err)
	}
	return nil
}

// ValidateBooking checks guest details on a new stay
func ValidateBooking(b *models.Booking) error {
	if b.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name must not be empty", nil)
	}

	if b.GuestEmail != "" && !isValidEmail(b.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid guest email", nil)
	}

	if b.GuestPhone != "" && !isValidPhone(b.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid guest phone number", nil)
	}

	return nil
}

// ValidateTicket checks a new service request
func ValidateTicket(t *models.ServiceRequest) error {
	if t.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ticket title must not be empty", nil)
	}

	switch t.Category {
	case constants.TicketCategoryHousekeeping, constants.TicketCategoryMaintenance,
		constants.TicketCategoryConcierge, constants.TicketCategoryOther:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Unknown ticket category: "+t.Category, nil)
	}

	if t.Priority != "" {
		switch t.Priority {
		case constants.TicketPriorityLow, constants.TicketPriorityNormal,
			constants.TicketPriorityHigh, constants.TicketPriorityUrgent:
		default:
			return errors.NewAppError(errors.ErrCodeValidation, "Unknown ticket priority: "+t.Priority, nil)
		}
	}

	return nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func isValidTimeOfDay(s string) bool {
	timeRegex := regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
	return timeRegex.MatchString(s)
}

func isValidWeekday(day string) bool {
	switch day {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}

func isValidServiceType(st string) bool {
	switch st {
	case constants.ServiceTypeRestaurant, constants.ServiceTypeBar,
		constants.ServiceTypeSpa, constants.ServiceTypeRoomService:
		return true
	}
	return false
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return phoneRegex.MatchString(phone)
}

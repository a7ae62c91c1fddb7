package controllers

import (
	"net/url"
	"strconv"
	"time"

	"guesthub/config"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"
	"guesthub/validator"

	"github.com/gin-gonic/gin"
)

func GetPromotions(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")
	typeFilter := c.Query("discountType")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Promotion{}).
		Where("hotel_id = ? AND is_deleted = ?", hotelID, false)

	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if statusFilter != "" {
		active, err := strconv.ParseBool(statusFilter)
		if err == nil {
			tx = tx.Where("is_active = ?", active)
		}
	}
	if typeFilter != "" {
		tx = tx.Where("discount_type = ?", typeFilter)
	}

	var totalPromotions int64
	if err := tx.Count(&totalPromotions).Error; err != nil {
		response.ServerError(c)
		return
	}

	var promotions []models.Promotion
	if err := tx.Preload("Overrides").Order("created_at desc").
		Offset(page * limit).Limit(limit).Find(&promotions).Error; err != nil {
		response.ServerError(c)
		return
	}

	promotionResponses := make([]dto.PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		promotionResponses = append(promotionResponses, buildPromotionResponse(p))
	}

	response.SuccessWithPagination(c, promotionResponses, page, limit, int(totalPromotions))
}

func GetPromotionDetail(c *gin.Context) {
	var promotion models.Promotion
	promotionID := c.Param("id")
	if err := config.DB.Preload("Overrides").
		Where("id = ? AND is_deleted = ?", promotionID, false).
		First(&promotion).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, promotion)
}

func CreatePromotion(c *gin.Context) {
	var input dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	promotion := models.Promotion{
		HotelID:              input.HotelID,
		Name:                 input.Name,
		Description:          input.Description,
		DiscountType:         input.DiscountType,
		DiscountValue:        input.DiscountValue,
		MaxDiscountAmount:    input.MaxDiscountAmount,
		MinOrderAmount:       input.MinOrderAmount,
		AppliesToAllProducts: input.AppliesToAllProducts,
		EligibleServiceTypes: input.EligibleServiceTypes,
		ShowAlways:           input.ShowAlways,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		StartTime:            input.StartTime,
		EndTime:              input.EndTime,
		DaysOfWeek:           input.DaysOfWeek,
		IsActive:             true,
	}

	if err := validator.ValidatePromotion(&promotion); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildPromotionResponse(promotion))
}

func UpdatePromotion(c *gin.Context) {
	var input dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var promotion models.Promotion
	if err := config.DB.Where("id = ? AND is_deleted = ?", input.ID, false).
		First(&promotion).Error; err != nil {
		response.NotFound(c)
		return
	}

	promotion.Name = input.Name
	promotion.Description = input.Description
	promotion.DiscountType = input.DiscountType
	promotion.DiscountValue = input.DiscountValue
	promotion.MaxDiscountAmount = input.MaxDiscountAmount
	promotion.MinOrderAmount = input.MinOrderAmount
	promotion.AppliesToAllProducts = input.AppliesToAllProducts
	promotion.EligibleServiceTypes = input.EligibleServiceTypes
	promotion.ShowAlways = input.ShowAlways
	promotion.StartDate = input.StartDate
	promotion.EndDate = input.EndDate
	promotion.StartTime = input.StartTime
	promotion.EndTime = input.EndTime
	promotion.DaysOfWeek = input.DaysOfWeek

	if err := validator.ValidatePromotion(&promotion); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildPromotionResponse(promotion))
}

func ChangePromotionStatus(c *gin.Context) {
	var input dto.ChangePromotionStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var promotion models.Promotion
	if err := config.DB.Where("id = ? AND is_deleted = ?", input.ID, false).
		First(&promotion).Error; err != nil {
		response.NotFound(c)
		return
	}

	promotion.IsActive = input.IsActive
	if err := config.DB.Save(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildPromotionResponse(promotion))
}

func DeletePromotion(c *gin.Context) {
	promotionID := c.Param("id")

	var promotion models.Promotion
	if err := config.DB.First(&promotion, promotionID).Error; err != nil {
		response.NotFound(c)
		return
	}

	promotion.IsDeleted = true
	promotion.IsActive = false
	if err := config.DB.Save(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func CreateOverride(c *gin.Context) {
	var input dto.CreateOverrideRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var promotion models.Promotion
	if err := config.DB.Where("id = ? AND is_deleted = ?", input.PromotionID, false).
		First(&promotion).Error; err != nil {
		response.NotFound(c)
		return
	}

	override := models.PromotionItemOverride{
		PromotionID:       input.PromotionID,
		ProductID:         input.ProductID,
		ServiceID:         input.ServiceID,
		MenuItemName:      services.NormalizeItemName(input.MenuItemName),
		DiscountType:      input.DiscountType,
		DiscountValue:     input.DiscountValue,
		MaxDiscountAmount: input.MaxDiscountAmount,
	}

	if err := validator.ValidateOverride(&override); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&override).Error; err != nil {
		response.Conflict(c, "An override for this item already exists on the promotion")
		return
	}

	response.Success(c, override)
}

func GetOverrides(c *gin.Context) {
	promotionID := c.Param("id")

	var overrides []models.PromotionItemOverride
	if err := config.DB.Where("promotion_id = ?", promotionID).
		Order("created_at desc").Find(&overrides).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, overrides)
}

func DeleteOverride(c *gin.Context) {
	overrideID := c.Param("id")

	if err := config.DB.Delete(&models.PromotionItemOverride{}, overrideID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// QuoteCart prices a cart without creating an order. The guest portal calls
// it on every cart change.
func QuoteCart(c *gin.Context) {
	var input dto.CartQuoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := services.NormalizeCart(input.Items)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	promotions, err := services.LoadActivePromotions(config.DB, input.HotelID)
	if err != nil {
		response.ServerError(c)
		return
	}

	var hotel models.Hotel
	now := time.Now()
	if err := config.DB.First(&hotel, input.HotelID).Error; err == nil {
		now = now.In(hotel.Location())
	}

	quote := priceCart(cart, promotions, now)

	response.Success(c, quote)
}

// priceCart resolves the discount for each line and totals the cart. The
// minimum-order check uses the pre-discount subtotal; when it fails the
// selected promotion's general discount is withdrawn but item overrides keep
// applying.
func priceCart(cart []services.CartItem, promotions []models.Promotion, now time.Time) dto.CartQuoteResponse {
	quote := dto.CartQuoteResponse{MinOrderMet: true}

	serviceTypes := make(map[uint]string)

	for _, line := range cart {
		lineSubtotal := services.RoundMoney(line.UnitPrice * float64(line.Quantity))
		quote.Subtotal = services.RoundMoney(quote.Subtotal + lineSubtotal)
	}

	for _, line := range cart {
		serviceType := ""
		if line.ServiceID != nil {
			if cached, ok := serviceTypes[*line.ServiceID]; ok {
				serviceType = cached
			} else {
				var svc models.HotelService
				if err := config.DB.First(&svc, *line.ServiceID).Error; err == nil {
					serviceType = svc.Type
				}
				serviceTypes[*line.ServiceID] = serviceType
			}
		}

		lineSubtotal := services.RoundMoney(line.UnitPrice * float64(line.Quantity))
		quoted := dto.QuotedItem{
			Name:         line.Name,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			LineSubtotal: lineSubtotal,
			LineTotal:    lineSubtotal,
		}

		resolved := services.ResolveFromPromotions(promotions, services.DiscountInput{
			ServiceType:  serviceType,
			ServiceID:    line.ServiceID,
			ProductID:    line.ProductID,
			MenuItemName: line.Name,
			Price:        line.UnitPrice,
		}, now)
		if resolved != nil {
			promo := findPromotion(promotions, resolved.PromotionID)
			if promo != nil && !services.CheckPromotionMinimumOrder(promo, quote.Subtotal) {
				quote.MinOrderMet = false
			} else {
				perUnit := resolved.DiscountAmount
				lineDiscount := services.RoundMoney(perUnit * float64(line.Quantity))
				quoted.DiscountAmount = lineDiscount
				quoted.DiscountType = resolved.DiscountType
				promoID := resolved.PromotionID
				quoted.PromotionID = &promoID
				quoted.LineTotal = services.RoundMoney(lineSubtotal - lineDiscount)
			}
		}

		quote.DiscountAmount = services.RoundMoney(quote.DiscountAmount + quoted.DiscountAmount)
		quote.Items = append(quote.Items, quoted)
	}

	quote.Total = services.RoundMoney(quote.Subtotal - quote.DiscountAmount)
	return quote
}

func findPromotion(promotions []models.Promotion, id uint) *models.Promotion {
	for i := range promotions {
		if promotions[i].ID == id {
			return &promotions[i]
		}
	}
	return nil
}

func buildPromotionResponse(p models.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:                   p.ID,
		HotelID:              p.HotelID,
		Name:                 p.Name,
		Description:          p.Description,
		DiscountType:         p.DiscountType,
		DiscountValue:        p.DiscountValue,
		MaxDiscountAmount:    p.MaxDiscountAmount,
		MinOrderAmount:       p.MinOrderAmount,
		AppliesToAllProducts: p.AppliesToAllProducts,
		EligibleServiceTypes: p.EligibleServiceTypes,
		ShowAlways:           p.ShowAlways,
		StartDate:            p.StartDate,
		EndDate:              p.EndDate,
		StartTime:            p.StartTime,
		EndTime:              p.EndTime,
		DaysOfWeek:           p.DaysOfWeek,
		IsActive:             p.IsActive,
		OverrideCount:        len(p.Overrides),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

package controllers

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"guesthub/config"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

func GetServices(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	cacheKey := "services:hotel:" + hotelID
	rdb, rdbErr := config.ConnectRedis()

	var hotelServices []models.HotelService
	if rdbErr == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &hotelServices); err == nil && len(hotelServices) > 0 {
			response.Success(c, hotelServices)
			return
		}
	}

	if err := config.DB.Where("hotel_id = ? AND is_deleted = ?", hotelID, false).
		Order("name asc").Find(&hotelServices).Error; err != nil {
		response.ServerError(c)
		return
	}

	if rdbErr == nil {
		_ = services.SetToRedis(config.Ctx, rdb, cacheKey, hotelServices, 60*time.Minute)
	}

	response.Success(c, hotelServices)
}

func CreateService(c *gin.Context) {
	var input dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	service := models.HotelService{
		HotelID:     input.HotelID,
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		IsActive:    true,
	}

	if err := service.ValidateType(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateMenuCache(service.HotelID)

	response.Success(c, service)
}

func UpdateService(c *gin.Context) {
	var input dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var service models.HotelService
	if err := config.DB.First(&service, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateMenuCache(service.HotelID)

	response.Success(c, service)
}

func DeleteService(c *gin.Context) {
	serviceID := c.Param("id")

	var service models.HotelService
	if err := config.DB.First(&service, serviceID).Error; err != nil {
		response.NotFound(c)
		return
	}

	service.IsDeleted = true
	service.IsActive = false
	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateMenuCache(service.HotelID)

	response.Success(c, nil)
}

func GetMenuItems(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		response.BadRequest(c, "serviceId is required")
		return
	}

	var items []models.MenuItem
	if err := config.DB.Where("service_id = ? AND is_deleted = ?", serviceID, false).
		Order("name asc").Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, items)
}

func CreateMenuItem(c *gin.Context) {
	var input dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var service models.HotelService
	if err := config.DB.First(&service, input.ServiceID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Price < 0 {
		response.BadRequest(c, "Price must not be negative")
		return
	}

	item := models.MenuItem{
		ServiceID:      input.ServiceID,
		Name:           input.Name,
		NormalizedName: services.NormalizeItemName(input.Name),
		Description:    input.Description,
		Price:          input.Price,
		ImageURL:       input.ImageURL,
		IsAvailable:    true,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateMenuCache(service.HotelID)

	response.Success(c, item)
}

func UpdateMenuItem(c *gin.Context) {
	var input dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var item models.MenuItem
	if err := config.DB.Preload("Service").First(&item, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != "" {
		item.Name = input.Name
		item.NormalizedName = services.NormalizeItemName(input.Name)
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			response.BadRequest(c, "Price must not be negative")
			return
		}
		item.Price = *input.Price
	}
	if input.ImageURL != "" {
		item.ImageURL = input.ImageURL
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Save(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	if item.Service != nil {
		invalidateMenuCache(item.Service.HotelID)
	}

	response.Success(c, item)
}

func DeleteMenuItem(c *gin.Context) {
	itemID := c.Param("id")

	var item models.MenuItem
	if err := config.DB.Preload("Service").First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	item.IsDeleted = true
	item.IsAvailable = false
	if err := config.DB.Save(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	if item.Service != nil {
		invalidateMenuCache(item.Service.HotelID)
	}

	response.Success(c, nil)
}

// SearchMenu is the guest menu browse endpoint. Free-text queries are fuzzy
// matched against item names and every result carries its promotion price.
// Filters are sticky per session: omitted parameters fall back to the last
// values used, stored in Redis under the session key.
func SearchMenu(c *gin.Context) {
	hotelIDStr := c.Query("hotelId")
	hotelID, err := strconv.ParseUint(hotelIDStr, 10, 64)
	if err != nil || hotelID == 0 {
		response.BadRequest(c, "hotelId is required")
		return
	}

	next := &dto.MenuSearchFilters{
		Query:       c.Query("q"),
		ServiceType: c.Query("serviceType"),
	}
	if sidStr := c.Query("serviceId"); sidStr != "" {
		if sid, err := strconv.ParseUint(sidStr, 10, 64); err == nil {
			id := uint(sid)
			next.ServiceID = &id
		}
	}
	if minStr := c.Query("priceMin"); minStr != "" {
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			next.PriceMin = &v
		}
	}
	if maxStr := c.Query("priceMax"); maxStr != "" {
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			next.PriceMax = &v
		}
	}

	filters := next
	sessionKey := c.Query("sessionKey")
	rdb, rdbErr := config.ConnectRedis()
	if sessionKey != "" && rdbErr == nil {
		old, err := services.GetLastFilters(config.Ctx, rdb, sessionKey)
		if err == nil {
			filters = services.MergeFilters(old, next)
		}
		_ = services.SaveLastFilters(config.Ctx, rdb, sessionKey, filters)
	}

	tx := config.DB.Model(&models.MenuItem{}).
		Preload("Service").
		Joins("JOIN hotel_services ON hotel_services.id = menu_items.service_id").
		Where("hotel_services.hotel_id = ? AND hotel_services.is_active = ?", hotelID, true).
		Where("menu_items.is_deleted = ? AND menu_items.is_available = ?", false, true)

	if filters.ServiceID != nil {
		tx = tx.Where("menu_items.service_id = ?", *filters.ServiceID)
	}
	if filters.ServiceType != "" {
		tx = tx.Where("hotel_services.type = ?", filters.ServiceType)
	}
	if filters.PriceMin != nil {
		tx = tx.Where("menu_items.price >= ?", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		tx = tx.Where("menu_items.price <= ?", *filters.PriceMax)
	}

	var items []models.MenuItem
	if err := tx.Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	if filters.Query != "" {
		items = fuzzyFilterMenuItems(filters.Query, items)
	}

	promotions, err := services.LoadActivePromotions(config.DB, uint(hotelID))
	if err != nil {
		response.ServerError(c)
		return
	}

	var hotel models.Hotel
	now := time.Now()
	if err := config.DB.First(&hotel, hotelID).Error; err == nil {
		now = now.In(hotel.Location())
	}

	results := make([]dto.MenuItemWithPrice, 0, len(items))
	for _, item := range items {
		serviceType := ""
		if item.Service != nil {
			serviceType = item.Service.Type
		}

		entry := dto.MenuItemWithPrice{
			ID:          item.ID,
			ServiceID:   item.ServiceID,
			ServiceType: serviceType,
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			FinalPrice:  item.Price,
			IsAvailable: item.IsAvailable,
		}

		productID := item.ID
		resolved := services.ResolveFromPromotions(promotions, services.DiscountInput{
			ServiceType:  serviceType,
			ServiceID:    &item.ServiceID,
			ProductID:    &productID,
			MenuItemName: item.Name,
			Price:        item.Price,
		}, now)
		if resolved != nil {
			entry.DiscountAmount = resolved.DiscountAmount
			entry.FinalPrice = services.RoundMoney(item.Price - resolved.DiscountAmount)
			promoID := resolved.PromotionID
			entry.PromotionID = &promoID
		}

		results = append(results, entry)
	}

	response.Success(c, gin.H{
		"items":   results,
		"filters": filters,
	})
}

type scoredMenuItem struct {
	item  models.MenuItem
	score float64
}

func normalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// similarity between two strings, 1.0 for identical
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func fuzzyFilterMenuItems(query string, items []models.MenuItem) []models.MenuItem {
	normalizedQuery := normalizeQuery(query)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.NormalizedName)
	}
	cm := closestmatch.New(names, []int{2, 3})
	closest := cm.Closest(normalizedQuery)

	scoreCh := make(chan scoredMenuItem, len(items))
	var wg sync.WaitGroup

	for _, item := range items {
		wg.Add(1)
		go func(item models.MenuItem) {
			defer wg.Done()
			score := 0.0
			if strings.Contains(item.NormalizedName, normalizedQuery) {
				score += 1.0
			}
			if item.NormalizedName == closest {
				score += 0.5
			}
			similarity := calculateSimilarity(normalizedQuery, item.NormalizedName)
			if similarity > 0.5 {
				score += similarity
			}
			if score > 0 {
				scoreCh <- scoredMenuItem{item: item, score: score}
			}
		}(item)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []scoredMenuItem
	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]models.MenuItem, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.item)
	}
	return result
}

func invalidateMenuCache(hotelID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "services:hotel:"+strconv.FormatUint(uint64(hotelID), 10))
}

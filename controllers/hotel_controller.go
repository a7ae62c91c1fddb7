package controllers

import (
	"context"
	"strconv"
	"time"

	"guesthub/config"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// GetBranding is the public endpoint the guest portal loads first. It is
// cached because every guest page hit goes through here.
func GetBranding(c *gin.Context) {
	hotelID := c.Param("id")

	rdb, err := config.ConnectRedis()
	cacheKey := "branding:" + hotelID
	if err == nil {
		var cached dto.BrandingResponse
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.ID != 0 {
			response.Success(c, cached)
			return
		}
	}

	var hotel models.Hotel
	if err := config.DB.Where("id = ?", hotelID).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	branding := buildBrandingResponse(hotel)

	if rdb != nil {
		_ = services.SetToRedis(config.Ctx, rdb, cacheKey, branding, 60*time.Minute)
	}

	response.Success(c, branding)
}

func UpdateBranding(c *gin.Context) {
	var input dto.UpdateBrandingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Timezone != "" {
		if _, err := time.LoadLocation(input.Timezone); err != nil {
			response.BadRequest(c, "Unknown timezone: "+input.Timezone)
			return
		}
		hotel.Timezone = input.Timezone
	}
	if input.Name != "" {
		hotel.Name = input.Name
	}
	if input.Currency != "" {
		hotel.Currency = input.Currency
	}
	if input.PrimaryColor != "" {
		hotel.PrimaryColor = input.PrimaryColor
	}
	if input.WelcomeMessage != "" {
		hotel.WelcomeMessage = input.WelcomeMessage
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBrandingCache(hotel.ID)

	response.Success(c, buildBrandingResponse(hotel))
}

// UploadLogo stores the hotel logo on Cloudinary and saves the returned URL
func UploadLogo(c *gin.Context) {
	hotelID := c.Param("id")

	var hotel models.Hotel
	if err := config.DB.Where("id = ?", hotelID).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Could not open file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "logos"})
	if err != nil {
		response.ServerError(c)
		return
	}

	hotel.LogoURL = resp.SecureURL
	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBrandingCache(hotel.ID)

	response.Success(c, gin.H{"url": resp.SecureURL})
}

func invalidateBrandingCache(hotelID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "branding:"+strconv.FormatUint(uint64(hotelID), 10))
}

func buildBrandingResponse(hotel models.Hotel) dto.BrandingResponse {
	return dto.BrandingResponse{
		ID:             hotel.ID,
		Name:           hotel.Name,
		Timezone:       hotel.Timezone,
		Currency:       hotel.Currency,
		LogoURL:        hotel.LogoURL,
		PrimaryColor:   hotel.PrimaryColor,
		WelcomeMessage: hotel.WelcomeMessage,
	}
}

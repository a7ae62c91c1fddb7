package controllers

import (
	goerrors "errors"
	"strconv"

	"guesthub/constants"
	"guesthub/dto"
	"guesthub/errors"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"
	"guesthub/services/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DataRequestController struct {
	db      *gorm.DB
	service *services.DataRequestService
}

func NewDataRequestController(db *gorm.DB) *DataRequestController {
	return &DataRequestController{
		db: db,
		service: services.NewDataRequestService(services.DataRequestServiceOptions{
			DB:     db,
			Logger: logger.NewDefaultLogger(logger.InfoLevel),
		}),
	}
}

func (d *DataRequestController) CreateDataRequest(c *gin.Context) {
	var input dto.CreateDataRequestRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.RequestType != constants.DataRequestTypeDeletion &&
		input.RequestType != constants.DataRequestTypeExport {
		response.BadRequest(c, "Unknown request type: "+input.RequestType)
		return
	}

	req := models.DataRequest{
		HotelID:     input.HotelID,
		GuestName:   input.GuestName,
		GuestEmail:  input.GuestEmail,
		RequestType: input.RequestType,
		Status:      constants.DataRequestStatusPending,
		Notes:       input.Notes,
	}

	if err := d.db.Create(&req).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buildDataRequestResponse(req))
}

func (d *DataRequestController) GetDataRequests(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	typeFilter := c.Query("requestType")
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

	tx := d.db.Model(&models.DataRequest{}).Where("hotel_id = ?", hotelID)
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if typeFilter != "" {
		tx = tx.Where("request_type = ?", typeFilter)
	}

	var totalRequests int64
	if err := tx.Count(&totalRequests).Error; err != nil {
		response.ServerError(c)
		return
	}

	var requests []models.DataRequest
	if err := tx.Order("created_at desc").
		Offset(page * limit).Limit(limit).Find(&requests).Error; err != nil {
		response.ServerError(c)
		return
	}

	requestResponses := make([]dto.DataRequestResponse, 0, len(requests))
	for _, req := range requests {
		requestResponses = append(requestResponses, buildDataRequestResponse(req))
	}

	response.SuccessWithPagination(c, requestResponses, page, limit, int(totalRequests))
}

// UpdateDataRequest moves a request through its workflow. Completing a
// deletion for a guest with an active booking is refused with a
// machine-readable reason unless forceProceed is set.
func (d *DataRequestController) UpdateDataRequest(c *gin.Context) {
	var input dto.UpdateDataRequestRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	switch input.Status {
	case constants.DataRequestStatusPending, constants.DataRequestStatusCompleted,
		constants.DataRequestStatusRejected:
	default:
		response.BadRequest(c, "Unknown request status: "+input.Status)
		return
	}

	var req models.DataRequest
	if err := d.db.First(&req, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Notes != "" {
		req.Notes = input.Notes
	}

	actorID := uint(0)
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			actorID = id
		}
	}

	if err := d.service.Process(&req, input.Status, input.ForceProceed, actorID); err != nil {
		var appErr *errors.AppError
		if goerrors.As(err, &appErr) && appErr.Code == errors.ErrCodeHasActiveBooking {
			response.Blocked(c, errors.ErrHasActiveBooking.Error())
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, buildDataRequestResponse(req))
}

func buildDataRequestResponse(req models.DataRequest) dto.DataRequestResponse {
	return dto.DataRequestResponse{
		ID:          req.ID,
		HotelID:     req.HotelID,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		RequestType: req.RequestType,
		Status:      req.Status,
		Notes:       req.Notes,
		ProcessedBy: req.ProcessedBy,
		ProcessedAt: req.ProcessedAt,
		CreatedAt:   req.CreatedAt,
	}
}

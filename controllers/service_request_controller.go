package controllers

import (
	"strconv"
	"time"

	"guesthub/constants"
	"guesthub/dto"
	"guesthub/models"
	"guesthub/response"
	"guesthub/services"
	"guesthub/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type ServiceRequestController struct {
	db *gorm.DB
	m  *melody.Melody
}

func NewServiceRequestController(db *gorm.DB, m *melody.Melody) *ServiceRequestController {
	return &ServiceRequestController{db: db, m: m}
}

// CreateTicket files a guest service request and pushes it to staff displays
func (s *ServiceRequestController) CreateTicket(c *gin.Context) {
	var input dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket := models.ServiceRequest{
		HotelID:     input.HotelID,
		BookingID:   input.BookingID,
		GuestName:   input.GuestName,
		Category:    input.Category,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      constants.TicketStatusOpen,
	}
	if input.RoomID != nil {
		ticket.RoomID = *input.RoomID
	}
	if ticket.Priority == "" {
		ticket.Priority = constants.TicketPriorityNormal
	}

	if err := validator.ValidateTicket(&ticket); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := s.db.Create(&ticket).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.BroadcastTicketUpdate(s.m, ticket)

	response.Success(c, buildTicketResponse(ticket))
}

func (s *ServiceRequestController) GetTickets(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	categoryFilter := c.Query("category")
	priorityFilter := c.Query("priority")
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

	tx := s.db.Model(&models.ServiceRequest{}).Where("hotel_id = ?", hotelID)
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if categoryFilter != "" {
		tx = tx.Where("category = ?", categoryFilter)
	}
	if priorityFilter != "" {
		tx = tx.Where("priority = ?", priorityFilter)
	}

	var totalTickets int64
	if err := tx.Count(&totalTickets).Error; err != nil {
		response.ServerError(c)
		return
	}

	var tickets []models.ServiceRequest
	if err := tx.Preload("Room").Order("created_at desc").
		Offset(page * limit).Limit(limit).Find(&tickets).Error; err != nil {
		response.ServerError(c)
		return
	}

	ticketResponses := make([]dto.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		ticketResponses = append(ticketResponses, buildTicketResponse(ticket))
	}

	response.SuccessWithPagination(c, ticketResponses, page, limit, int(totalTickets))
}

func (s *ServiceRequestController) ChangeTicketStatus(c *gin.Context) {
	var input dto.ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	switch input.Status {
	case constants.TicketStatusOpen, constants.TicketStatusInProgress,
		constants.TicketStatusResolved, constants.TicketStatusCancelled:
	default:
		response.BadRequest(c, "Unknown ticket status: "+input.Status)
		return
	}

	var ticket models.ServiceRequest
	if err := s.db.Preload("Room").First(&ticket, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	ticket.Status = input.Status
	if input.Notes != "" {
		ticket.Description = ticket.Description + "\n" + input.Notes
	}
	if input.Status == constants.TicketStatusResolved {
		now := time.Now()
		ticket.ResolvedAt = &now
	}

	if err := s.db.Save(&ticket).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.BroadcastTicketUpdate(s.m, ticket)

	response.Success(c, buildTicketResponse(ticket))
}

func (s *ServiceRequestController) AssignTicket(c *gin.Context) {
	var input dto.AssignTicketRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var ticket models.ServiceRequest
	if err := s.db.Preload("Room").First(&ticket, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var assignee models.User
	if err := s.db.First(&assignee, input.AssigneeID).Error; err != nil {
		response.BadRequest(c, "Unknown assignee")
		return
	}

	ticket.AssignedTo = &assignee.ID
	if ticket.Status == constants.TicketStatusOpen {
		ticket.Status = constants.TicketStatusInProgress
	}

	if err := s.db.Save(&ticket).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.BroadcastTicketUpdate(s.m, ticket)

	response.Success(c, buildTicketResponse(ticket))
}

func buildTicketResponse(ticket models.ServiceRequest) dto.TicketResponse {
	roomNumber := ""
	if ticket.Room != nil {
		roomNumber = ticket.Room.RoomNumber
	}

	return dto.TicketResponse{
		ID:          ticket.ID,
		HotelID:     ticket.HotelID,
		RoomNumber:  roomNumber,
		GuestName:   ticket.GuestName,
		Category:    ticket.Category,
		Priority:    ticket.Priority,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		AssigneeID:  ticket.AssignedTo,
		ResolvedAt:  ticket.ResolvedAt,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}

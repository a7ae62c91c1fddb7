package constants

// Staff roles
const (
	RoleGuest      = 0
	RoleStaff      = 1
	RoleHotelAdmin = 2
	RoleSuperAdmin = 3
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Booking status
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
)

// Payment status
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Order fulfilment status
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// Order item status
const (
	ItemStatusPending   = "pending"
	ItemStatusPreparing = "preparing"
	ItemStatusReady     = "ready"
	ItemStatusDelivered = "delivered"
	ItemStatusCancelled = "cancelled"
)

// Departments
const (
	DepartmentKitchen = "kitchen"
	DepartmentBar     = "bar"
)

// Service types
const (
	ServiceTypeRestaurant  = "restaurant"
	ServiceTypeBar         = "bar"
	ServiceTypeSpa         = "spa"
	ServiceTypeRoomService = "room_service"
)

// Discount types
const (
	DiscountTypePercentage  = "percentage"
	DiscountTypeFixedAmount = "fixed_amount"
	DiscountTypeFreeItem    = "free_item"
)

// Data-subject request types and status
const (
	DataRequestTypeDeletion = "deletion"
	DataRequestTypeExport   = "export"

	DataRequestStatusPending   = "pending"
	DataRequestStatusCompleted = "completed"
	DataRequestStatusRejected  = "rejected"
)

// Service request (ticket) status and priority
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusCancelled  = "cancelled"

	TicketPriorityLow    = "low"
	TicketPriorityNormal = "normal"
	TicketPriorityHigh   = "high"
	TicketPriorityUrgent = "urgent"
)

// Ticket categories
const (
	TicketCategoryHousekeeping = "housekeeping"
	TicketCategoryMaintenance  = "maintenance"
	TicketCategoryConcierge    = "concierge"
	TicketCategoryOther        = "other"
)

package dto

import (
	"github.com/wb-go/wbf/ginext"
	"time"
)

const (
	FieldBadFormat     = "FIELD_BADFORMAT"
	FieldIncorrect     = "FIELD_INCORRECT"
	ServiceUnavailable = "SERVICE_UNAVAILABLE"
	InternalError      = "Service is currently unavailable. Please try again later."

	PackageNotFound   = "PACKAGE_NOT_FOUND"
	QuoteNotFound     = "QUOTE_NOT_FOUND"
	CustomerNotFound  = "CUSTOMER_NOT_FOUND"
	MessageNotFound   = "MESSAGE_NOT_FOUND"
	InvalidTransition = "INVALID_TRANSITION"
	Unauthorized      = "UNAUTHORIZED"
	AdminDuplicate    = "ADMIN_DUPLICATE"
)

const (
	MessageSourceContact = "contact"
	MessageSourceQuote   = "quote"
	MessageSourceOther   = "other"
)

type QuoteItemRequest struct {
	PackageID int64 `json:"package_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

type SubmitQuoteRequest struct {
	FullName  string             `json:"full_name" validate:"required,min=3,max=255"`
	Email     string             `json:"email" validate:"required,email"`
	Phone     string             `json:"phone" validate:"required,phone"`
	Company   string             `json:"company"`
	EventType string             `json:"event_type" validate:"required"`
	EventDate time.Time          `json:"event_date" validate:"required,future"`
	Notes     string             `json:"notes"`
	Items     []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

type QuoteItemResponse struct {
	PackageID int64   `json:"package_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type QuoteResponse struct {
	ID         int64               `json:"id"`
	CustomerID int64               `json:"customer_id"`
	EventType  string              `json:"event_type"`
	EventDate  time.Time           `json:"event_date"`
	Notes      string              `json:"notes,omitempty"`
	Status     string              `json:"status"`
	Total      float64             `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Items      []QuoteItemResponse `json:"items,omitempty"`
}

type CustomerResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PackageRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"required"`
	PricePerDay   float64 `json:"price_per_day" validate:"gte=0"`
	ItemsIncluded string  `json:"items_included"`
	IsActive      *bool   `json:"is_active"`
}

type PackageResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	PricePerDay   float64   `json:"price_per_day"`
	ItemsIncluded string    `json:"items_included,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body" validate:"required"`
	Source  string `json:"source"`
}

type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	Source    string    `json:"source"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterAdminRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// QuoteNotificationMessage is the payload published to the notification
// exchange and consumed by the email worker.
type QuoteNotificationMessage struct {
	QuoteID int64  `json:"quote_id"`
	Kind    string `json:"kind"`
}

const (
	NotifyQuoteReceived = "received"
	NotifyQuoteReminder = "reminder"
	NotifyQuoteApproved = "approved"
	NotifyQuoteRejected = "rejected"
)

type Response struct {
	Status string `json:"status"`
	Error  *Error `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type Error struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

func BadResponseError(c *ginext.Context, code, desc string) {
	c.JSON(400, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func NotFoundError(c *ginext.Context, code, desc string) {
	c.JSON(404, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func UnauthorizedError(c *ginext.Context, desc string) {
	c.JSON(401, Response{
		Status: "error",
		Error: &Error{
			Code: Unauthorized,
			Desc: desc,
		},
	})
}

func ConflictError(c *ginext.Context, code, desc string) {
	c.JSON(409, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func InternalServerError(c *ginext.Context) {
	c.JSON(500, Response{
		Status: "error",
		Error: &Error{
			Code: ServiceUnavailable,
			Desc: InternalError,
		},
	})
}

func InvalidTransitionError(c *ginext.Context, desc string) {
	BadResponseError(c, InvalidTransition, desc)
}

func PackageNotFoundError(c *ginext.Context) {
	NotFoundError(c, PackageNotFound, "Package not found")
}

func QuoteNotFoundError(c *ginext.Context) {
	NotFoundError(c, QuoteNotFound, "Quote not found")
}

func CustomerNotFoundError(c *ginext.Context) {
	NotFoundError(c, CustomerNotFound, "Customer not found")
}

func MessageNotFoundError(c *ginext.Context) {
	NotFoundError(c, MessageNotFound, "Message not found")
}

func SuccessResponse(c *ginext.Context, data any) {
	c.JSON(200, Response{
		Status: "ok",
		Data:   data,
	})
}

func SuccessCreatedResponse(c *ginext.Context, data any) {
	c.JSON(201, Response{
		Status: "ok",
		Data:   data,
	})
}

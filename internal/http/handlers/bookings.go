package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/middleware"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/services"
)

type quoteRequest struct {
	TripID       int64    `json:"tripId" binding:"required"`
	Seats        []string `json:"seats" binding:"required"`
	Need         string   `json:"need"`
	DiscountCode string   `json:"discountCode"`
}

// POST /api/bookings/quote
func QuoteBooking(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	need, err := domain.ParseSpecialNeed(req.Need)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	fare, err := svc.Quote(services.QuoteInput{
		TripID:       req.TripID,
		SeatCodes:    req.Seats,
		Need:         need,
		DiscountCode: req.DiscountCode,
	})
	if errors.Is(err, domain.ErrInvalidDiscountCode) {
		// surface the undiscounted quote alongside the rejection
		c.JSON(http.StatusOK, gin.H{"fare": fare, "discountError": err.Error()})
		return
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare": fare})
}

type createBookingRequest struct {
	TripID       int64                `json:"tripId" binding:"required"`
	Seats        []models.BookingSeat `json:"seats" binding:"required"`
	Need         string               `json:"need"`
	DiscountCode string               `json:"discountCode"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	need, err := domain.ParseSpecialNeed(req.Need)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Create(services.CreateInput{
		UserID:       middleware.GetUserID(c),
		TripID:       req.TripID,
		Seats:        req.Seats,
		Need:         need,
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GET /api/bookings
func ListMyBookings(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	bookings, err := svc.ListForUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, seats, err := svc.Get(id, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "seats": seats})
}

type cancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// POST /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req cancelRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.Cancel(id, middleware.GetUserID(c), req.Reason); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicketPDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateETicket(id, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

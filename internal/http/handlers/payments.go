package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/middleware"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/services"
)

// POST /api/bookings/:id/pay
func PayBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var card services.CardDetails
	if !BindJSONOrError(c, &card) {
		return
	}

	svc := services.PaymentService{RequestID: middleware.GetRequestID(c)}
	payment, err := svc.Pay(id, middleware.GetUserID(c), card)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// GET /api/bookings/:id/payments
func ListBookingPayments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// ownership check rides on the booking lookup
	bookingSvc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if _, _, err := bookingSvc.Get(id, middleware.GetUserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.PaymentRepository{}
	payments, err := repo.ListByBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

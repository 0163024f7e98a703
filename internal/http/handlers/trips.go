package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/middleware"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/services"
)

// GET /api/trips?from=&to=&date=&timeAfter=&sortBy=
func SearchTrips(c *gin.Context) {
	svc := services.TripService{RequestID: middleware.GetRequestID(c)}

	trips, err := svc.Search(services.TripSearchInput{
		From:      c.Query("from"),
		To:        c.Query("to"),
		Date:      c.Query("date"),
		TimeAfter: c.Query("timeAfter"),
		SortBy:    c.Query("sortBy"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/:id/seats?need=
func GetTripSeats(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	need, err := domain.ParseSpecialNeed(c.Query("need"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	layout, eligible, err := svc.SeatMapForTrip(tripID, need)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	eligibleCodes := make([]string, 0, len(eligible))
	for _, s := range eligible {
		eligibleCodes = append(eligibleCodes, s.Code)
	}

	c.JSON(http.StatusOK, gin.H{
		"tripId":   tripID,
		"rows":     domain.LayoutRows,
		"cols":     domain.LayoutCols,
		"seats":    layout.Seats,
		"eligible": eligibleCodes,
	})
}

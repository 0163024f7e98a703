package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/middleware"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/services"
)

// GET /api/driver/trips/:id/roster?status=
func GetRoster(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status, err := domain.ParseBoardingStatus(c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.RosterService{RequestID: middleware.GetRequestID(c)}
	view, err := svc.Load(tripID, status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/driver/trips/:id/roster/:ticket/board
func BoardPassenger(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.RosterService{RequestID: middleware.GetRequestID(c)}
	entry, err := svc.ConfirmBoarding(tripID, c.Param("ticket"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// POST /api/driver/trips/:id/roster/:ticket/miss
func MissPassenger(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.RosterService{RequestID: middleware.GetRequestID(c)}
	entry, err := svc.MarkMissed(tripID, c.Param("ticket"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// POST /api/driver/trips/:id/close-doors
func CloseDoors(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.RosterService{RequestID: middleware.GetRequestID(c)}
	view, affected, err := svc.CloseDoors(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"missed": affected, "roster": view})
}

type scanRequest struct {
	Ticket string `json:"ticket" binding:"required"`
}

// POST /api/driver/trips/:id/scan
func ScanTicket(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req scanRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.RosterService{RequestID: middleware.GetRequestID(c)}
	session, err := svc.Scan(tripID, req.Ticket)
	if err != nil {
		if session != nil {
			// the scan flow cancelled; report the state with the cause
			c.JSON(http.StatusConflict, gin.H{
				"state": session.State,
				"error": err.Error(),
			})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State, "entry": session.Result})
}

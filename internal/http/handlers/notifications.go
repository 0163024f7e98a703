package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/middleware"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
)

// GET /api/notifications
func ListNotifications(c *gin.Context) {
	repo := repositories.NotificationRepository{}
	items, err := repo.ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

// POST /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NotificationRepository{}
	if err := repo.MarkRead(id, middleware.GetUserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}

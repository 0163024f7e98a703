package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/middleware"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
)

type issueRequest struct {
	TripID      int64  `json:"tripId"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// POST /api/issues
func CreateIssue(c *gin.Context) {
	var req issueRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		RespondError(c, http.StatusBadRequest, "description is required", nil)
		return
	}

	category, err := domain.ParseIssueCategory(req.Category)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.IssueRepository{}
	id, err := repo.Insert(models.Issue{
		UserID:      middleware.GetUserID(c),
		TripID:      req.TripID,
		Category:    string(category),
		Description: req.Description,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": "OPEN"})
}

// GET /api/transporter/issues?status=
func ListIssues(c *gin.Context) {
	repo := repositories.IssueRepository{}
	items, err := repo.List(c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"issues": items})
}

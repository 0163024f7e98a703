package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
)

type driverPayload struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"licenseNo" binding:"required"`
	Status    string `json:"status"`
}

func (p driverPayload) toModel(id int64) models.Driver {
	status := strings.ToUpper(strings.TrimSpace(p.Status))
	if status == "" {
		status = "ACTIVE"
	}
	return models.Driver{
		ID:        id,
		Name:      p.Name,
		Phone:     p.Phone,
		LicenseNo: p.LicenseNo,
		Status:    status,
	}
}

// GET /api/transporter/drivers
func GetDrivers(c *gin.Context) {
	repo := repositories.DriverRepository{}
	items, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drivers": items})
}

// POST /api/transporter/drivers
func CreateDriver(c *gin.Context) {
	var req driverPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.DriverRepository{}
	id, err := repo.Insert(req.toModel(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/transporter/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req driverPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.DriverRepository{}
	if err := repo.Update(req.toModel(id)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver updated"})
}

// DELETE /api/transporter/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.DriverRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}

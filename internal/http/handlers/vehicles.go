package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
)

type vehiclePayload struct {
	Code        string `json:"code" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

func (p vehiclePayload) toModel(id int64) models.Vehicle {
	status := strings.ToUpper(strings.TrimSpace(p.Status))
	if status == "" {
		status = "ACTIVE"
	}
	capacity := p.Capacity
	if capacity <= 0 {
		capacity = 40
	}
	return models.Vehicle{
		ID:          id,
		Code:        p.Code,
		PlateNumber: p.PlateNumber,
		Capacity:    capacity,
		Status:      status,
	}
}

// GET /api/transporter/vehicles
func GetVehicles(c *gin.Context) {
	repo := repositories.VehicleRepository{}
	items, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": items})
}

// POST /api/transporter/vehicles
func CreateVehicle(c *gin.Context) {
	var req vehiclePayload
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.VehicleRepository{}
	id, err := repo.Insert(req.toModel(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/transporter/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req vehiclePayload
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.VehicleRepository{}
	if err := repo.Update(req.toModel(id)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle updated"})
}

// DELETE /api/transporter/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.VehicleRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

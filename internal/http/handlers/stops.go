package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/utils"
)

// GetStops lists the supported city stops in route order.
func GetStops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stops": utils.Stops()})
}

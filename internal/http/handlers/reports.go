package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/utils"
)

// GET /api/transporter/reports?startDate=&endDate=
func GetFleetReport(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := utils.ParseDate(d); err != nil {
			RespondError(c, http.StatusBadRequest, "dates must be YYYY-MM-DD", err)
			return
		}
	}

	repo := repositories.ReportRepository{}
	report, err := repo.FleetReport(startDate, endDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report":         report,
		"revenueDisplay": utils.FormatAmount(report.Revenue),
	})
}

package Controllers

import (
	"net/http"
	"strconv"

	"github.com/krahulsahu/carevita-server/Models"

	"github.com/gin-gonic/gin"
)

// FetchDashboardStats computes the headline numbers from the registries
// instead of carrying a second hardcoded copy of them.
func FetchDashboardStats(c *gin.Context) {
	var output struct {
		Total     int64   `json:"total"`
		Pending   int64   `json:"pending"`
		Completed int64   `json:"completed"`
		Cancelled int64   `json:"cancelled"`
		Patients  int64   `json:"patients"`
		Revenue   float64 `json:"revenue"`
	}

	appointments := Models.DB.Model(&Models.Appointment{})
	if err := appointments.Count(&output.Total).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	Models.DB.Model(&Models.Appointment{}).Where("status = ?", Models.StatusPending).Count(&output.Pending)
	Models.DB.Model(&Models.Appointment{}).Where("status = ?", Models.StatusCompleted).Count(&output.Completed)
	Models.DB.Model(&Models.Appointment{}).Where("status = ?", Models.StatusCancelled).Count(&output.Cancelled)
	Models.DB.Model(&Models.Patient{}).Count(&output.Patients)

	// Revenue counts collected fees only.
	var revenue *float64
	Models.DB.Model(&Models.Appointment{}).Where("status = ?", Models.StatusCompleted).
		Select("sum(fees)").Scan(&revenue)
	if revenue != nil {
		output.Revenue = *revenue
	}

	c.JSON(http.StatusOK, output)
}

// FetchActivities serves the read-only activity feed, newest first.
func FetchActivities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	query := Models.DB.Model(&Models.Activity{}).Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activities []Models.Activity
	if err := query.Find(&activities).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

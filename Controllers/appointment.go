package Controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/krahulsahu/carevita-server/Models"
	"github.com/krahulsahu/carevita-server/SSE"

	"github.com/gin-gonic/gin"
)

// FetchAppointments lists the registry in seed order. The tab filter is an
// explicit status predicate here; limit is applied after load.
func FetchAppointments(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !Models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + status})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	query := Models.DB.Model(&Models.Appointment{}).Order("id")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []Models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if limit > 0 && limit < len(appointments) {
		appointments = appointments[:limit]
	}

	c.JSON(http.StatusOK, appointments)
}

// FetchUpcomingAppointments feeds the dashboard side panel: the next
// pending visits in registry order.
func FetchUpcomingAppointments(c *gin.Context) {
	var appointments []Models.Appointment
	if err := Models.DB.Model(&Models.Appointment{}).
		Where("status = ?", Models.StatusPending).
		Order("id").Limit(3).
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func CompleteAppointment(c *gin.Context) {
	transitionAppointment(c, Models.StatusCompleted)
}

func CancelAppointment(c *gin.Context) {
	transitionAppointment(c, Models.StatusCancelled)
}

// transitionAppointment applies the one-way status machine: Pending moves
// to the target immediately, Completed and Cancelled stay put. Re-invoking
// on a settled appointment answers 200 without touching the row.
func transitionAppointment(c *gin.Context, target string) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointment Models.Appointment
	if err := Models.DB.First(&appointment, input.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if !appointment.Transition(target) {
		c.JSON(http.StatusOK, gin.H{"message": "No change", "appointment": appointment})
		return
	}

	if err := Models.DB.Save(&appointment).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	if target == Models.StatusCompleted {
		Models.RecordActivity(Models.ActivityAppointmentCompleted, appointment.PatientName, "Appointment completed")
	} else {
		Models.RecordActivity(Models.ActivityAppointmentCancelled, appointment.PatientName, "Appointment cancelled")
	}

	SSE.Events.Broadcast("refresh", "refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Marked Successfully", "appointment": appointment})
}

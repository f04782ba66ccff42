package Controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/krahulsahu/carevita-server/Documents"
	"github.com/krahulsahu/carevita-server/Models"
	"github.com/krahulsahu/carevita-server/SSE"

	"github.com/gin-gonic/gin"
)

// FetchReports lists the registry in seed order, optionally narrowed by a
// case-insensitive substring match against patient name or diagnosis. The
// filter runs in Go so the ordering and case rules don't depend on the
// collation of whichever driver is configured.
func FetchReports(c *gin.Context) {
	var reports []Models.Report
	if err := Models.DB.Model(&Models.Report{}).Order("id").Find(&reports).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := strings.ToLower(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, reports)
		return
	}

	filtered := make([]Models.Report, 0, len(reports))
	for _, report := range reports {
		if strings.Contains(strings.ToLower(report.PatientName), query) ||
			strings.Contains(strings.ToLower(report.Diagnosis), query) {
			filtered = append(filtered, report)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

func FetchReport(c *gin.Context) {
	var report Models.Report
	if err := Models.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateReport saves a report or prescription draft into the registry, so
// the list screen reflects it immediately.
func CreateReport(c *gin.Context) {
	var input struct {
		PatientID   uint   `json:"patient_id" binding:"required"`
		Type        string `json:"type" binding:"required"`
		Diagnosis   string `json:"diagnosis" binding:"required"`
		Symptoms    string `json:"symptoms"`
		Tests       string `json:"tests"`
		Medications string `json:"medications"`
		Advice      string `json:"advice"`
		FollowUp    string `json:"follow_up"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !Models.ValidReportType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Report or Prescription"})
		return
	}
	if !Models.ValidFollowUp(input.FollowUp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown follow-up period: " + input.FollowUp})
		return
	}

	patient := Models.LookupPatient(input.PatientID)

	report := Models.Report{
		PatientName: patient.Name,
		PatientID:   input.PatientID,
		Date:        time.Now().Format("02 Jan 2006"),
		Diagnosis:   input.Diagnosis,
		Type:        input.Type,
		Symptoms:    input.Symptoms,
		Tests:       input.Tests,
		Medications: input.Medications,
		Advice:      input.Advice,
		FollowUp:    input.FollowUp,
	}

	if err := Models.DB.Create(&report).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	Models.RecordActivity(Models.ActivityReportCreated, report.PatientName, "Medical report created")
	SSE.Events.Broadcast("refresh", "refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Saved Successfully", "report": report})
}

// DownloadReport proxies the document service's PDF render of a report.
func DownloadReport(c *gin.Context) {
	var report Models.Report
	if err := Models.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	pdf, err := Documents.RenderPDF(report)
	if err != nil {
		if errors.Is(err, Documents.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		log.Println(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to render report"})
		return
	}

	c.Data(http.StatusOK, "application/pdf", pdf)
}

// SendReportToPatient asks the document service to email the report to the
// address on the patient's directory record.
func SendReportToPatient(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var report Models.Report
	if err := Models.DB.First(&report, input.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	patient := Models.LookupPatient(report.PatientID)
	if patient.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient has no email on record"})
		return
	}

	if err := Documents.SendToPatient(report, patient.Email); err != nil {
		if errors.Is(err, Documents.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		log.Println(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report sent to patient"})
}

package Models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	ActivityAppointmentCompleted = "appointment_completed"
	ActivityAppointmentCancelled = "appointment_cancelled"
	ActivityReportCreated        = "report_created"
	ActivityMessageReceived      = "message_received"
	ActivityAppointmentScheduled = "appointment_scheduled"
)

// Activity is the read-only feed on the dashboard. Rows are appended by
// status transitions, report creation, patient replies and the reminder
// worker; nothing mutates or deletes them.
type Activity struct {
	gorm.Model
	Type        string `json:"type"`
	PatientName string `json:"patient_name"`
	DisplayTime string `json:"time"`
	Description string `json:"description"`
}

func RecordActivity(activityType, patientName, description string) {
	activity := Activity{
		Type:        activityType,
		PatientName: patientName,
		DisplayTime: time.Now().Format("02 Jan 2006, 03:04 PM"),
		Description: description,
	}
	if err := DB.Create(&activity).Error; err != nil {
		log.Println("failed to record activity:", err)
	}
}
